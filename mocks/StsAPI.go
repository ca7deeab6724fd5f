package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/mock"
)

// StsAPI is a mock type for the StsAPI type
type StsAPI struct {
	mock.Mock
}

// GetCallerIdentity provides a mock function with given fields: ctx, params
func (m *StsAPI) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *sts.GetCallerIdentityOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sts.GetCallerIdentityOutput)
	}

	return r0, ret.Error(1)
}
