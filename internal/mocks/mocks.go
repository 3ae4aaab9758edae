// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// value returns the i-th return value as T, treating nil as the zero value.
func value[T any](ret mock.Arguments, i int) T {
	var zero T
	if len(ret) <= i || ret.Get(i) == nil {
		return zero
	}
	return ret.Get(i).(T)
}
