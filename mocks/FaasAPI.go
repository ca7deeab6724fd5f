package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/stretchr/testify/mock"
)

// FaasAPI is a mock type for the FaasAPI type
type FaasAPI struct {
	mock.Mock
}

// Invoke provides a mock function with given fields: ctx, params
func (m *FaasAPI) Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *lambda.InvokeOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*lambda.InvokeOutput)
	}

	return r0, ret.Error(1)
}
