// Package kickstart runs a program as setup, a loop and a shutdown step,
// stopping the loop on SIGINT/SIGTERM.
package kickstart

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
)

type KickstartFunc[T any] func(*Context[T]) error

type Context[T any] struct {
	AppHandler T
	Next       LoopState

	stop <-chan struct{}
}

// Break ends the loop after the current iteration.
func (kctx *Context[T]) Break() {
	kctx.Next = LoopBreakFlag
}

// Stopping reports whether a stop signal has arrived.
func (kctx *Context[T]) Stopping() bool {
	select {
	case <-kctx.stop:
		return true
	default:
		return false
	}
}

type App[T any] struct {
	initFn      KickstartFunc[T]
	afterInitFn KickstartFunc[T]
	loopFn      KickstartFunc[T]
	afterLoopFn KickstartFunc[T]
	stop        <-chan struct{}
}

type AppAfterInit[T any] struct {
	initFn KickstartFunc[T]
	then   KickstartFunc[T]
}

type AppAfterLoop[T any] struct {
	init   *AppAfterInit[T]
	loopFn KickstartFunc[T]
	then   KickstartFunc[T]
	stop   <-chan struct{}
}

func Init[T any](initFn KickstartFunc[T]) *AppAfterInit[T] {
	return &AppAfterInit[T]{
		initFn: initFn,
	}
}

func (app *AppAfterInit[T]) Loop(loopFn KickstartFunc[T]) *AppAfterLoop[T] {
	return &AppAfterLoop[T]{
		init:   app,
		loopFn: loopFn,
	}
}

func (app *AppAfterInit[T]) Then(next KickstartFunc[T]) *AppAfterInit[T] {
	app.then = next

	return app
}

func (app *AppAfterInit[T]) Exec() error {
	return exec(&App[T]{
		initFn:      app.initFn,
		afterInitFn: app.then,
	})
}

// Then runs after the loop, also when the loop failed.
func (app *AppAfterLoop[T]) Then(next KickstartFunc[T]) *AppAfterLoop[T] {
	app.then = next

	return app
}

// StopOn replaces the OS signal handling with the given channel.
func (app *AppAfterLoop[T]) StopOn(stop <-chan struct{}) *AppAfterLoop[T] {
	app.stop = stop

	return app
}

func (app *AppAfterLoop[T]) Exec() error {
	return exec(&App[T]{
		initFn:      app.init.initFn,
		afterInitFn: app.init.then,
		loopFn:      app.loopFn,
		afterLoopFn: app.then,
		stop:        app.stop,
	})
}

type LoopState int

const (
	LoopContinueFlag LoopState = iota
	LoopBreakFlag
)

func signalStop() <-chan struct{} {
	stopRun := make(chan struct{})
	osSignalCaptor := make(chan os.Signal, 1)
	signal.Notify(osSignalCaptor, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-osSignalCaptor
		signal.Stop(osSignalCaptor)
		close(stopRun)
	}()

	return stopRun
}

func exec[T any](app *App[T]) error {
	stop := app.stop
	if stop == nil && app.loopFn != nil {
		stop = signalStop()
	}

	ctx := Context[T]{stop: stop}

	if err := app.initFn(&ctx); err != nil {
		return err
	}

	if app.afterInitFn != nil {
		if err := app.afterInitFn(&ctx); err != nil {
			return err
		}
	}

	if app.loopFn == nil {
		return nil
	}

	var loopErr error

	for !ctx.Stopping() {
		if loopErr = app.loopFn(&ctx); loopErr != nil {
			break
		}

		if ctx.Next == LoopBreakFlag {
			break
		}
	}

	if app.afterLoopFn != nil {
		return errors.Join(loopErr, app.afterLoopFn(&ctx))
	}

	return loopErr
}
