package runtimex

import (
	"errors"
	"io"
	"testing"
)

func TestPanicOnError(t *testing.T) {
	t.Run("with nil error", func(t *testing.T) {
		PanicOnError(nil, "should not happen")
	})

	t.Run("with non-nil error", func(t *testing.T) {
		err := CatchPanic(func() {
			PanicOnError(io.EOF, "reading")
		})
		if !errors.Is(err, io.EOF) {
			t.Fatal("unexpected error", err)
		}
		if err.Error() != "reading: EOF" {
			t.Fatal("unexpected message", err)
		}
	})
}

func TestPanicIfFalse(t *testing.T) {
	PanicIfFalse(true, "should not happen")
	err := CatchPanic(func() {
		PanicIfFalse(false, "boom")
	})
	if err == nil || err.Error() != "boom" {
		t.Fatal("unexpected error", err)
	}
}

func TestPanicIfTrue(t *testing.T) {
	PanicIfTrue(false, "should not happen")
	err := CatchPanic(func() {
		PanicIfTrue(true, "boom")
	})
	if err == nil || err.Error() != "boom" {
		t.Fatal("unexpected error", err)
	}
}

func TestPanicIfNil(t *testing.T) {
	PanicIfNil(17, "should not happen")
	err := CatchPanic(func() {
		PanicIfNil(nil, "boom")
	})
	if err == nil || err.Error() != "boom" {
		t.Fatal("unexpected error", err)
	}
}

func TestTry1(t *testing.T) {
	if v := Try1(17, nil); v != 17 {
		t.Fatal("unexpected value", v)
	}
	err := CatchPanic(func() {
		Try1(0, io.EOF)
	})
	if !errors.Is(err, io.EOF) {
		t.Fatal("unexpected error", err)
	}
}

func TestCatchPanic(t *testing.T) {
	t.Run("without panic", func(t *testing.T) {
		if err := CatchPanic(func() {}); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("with non-error value", func(t *testing.T) {
		err := CatchPanic(func() { panic(42) })
		if err == nil || err.Error() != "42" {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestAssert(t *testing.T) {
	Assert(true, "should not happen")
	if err := CatchPanic(func() { Assert(false, "boom") }); err == nil || err.Error() != "boom" {
		t.Fatal("unexpected error", err)
	}
}
