package main

import "github.com/tanema/gween"

// Action hangs callbacks on a running tween: onChange fires every update,
// onFinish and nexts fire once when the tween completes.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next chains t to start when a finishes and returns t's action to fill.
func (a *Action) next(t *gween.Tween) *Action {
	action := Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return &action
}
