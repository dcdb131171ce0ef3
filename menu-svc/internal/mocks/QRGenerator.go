package mocks

import "github.com/stretchr/testify/mock"

// QRGenerator is a mock type for the service.QRGenerator interface.
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(orderID int64) ([]byte, error) {
	ret := _m.Called(orderID)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// NewQRGenerator creates a new instance of QRGenerator and asserts its expectations on cleanup.
func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
