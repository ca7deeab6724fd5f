package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/stretchr/testify/mock"
)

// IamAPI is a mock type for the IamAPI type
type IamAPI struct {
	mock.Mock
}

// GetRole provides a mock function with given fields: ctx, params
func (m *IamAPI) GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *iam.GetRoleOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*iam.GetRoleOutput)
	}

	return r0, ret.Error(1)
}
