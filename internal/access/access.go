package access

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ErrRoleNotFound is returned when the job role does not exist in IAM
var ErrRoleNotFound = errors.New("role not found")

// IamAPI is an interface used to mock API calls made to the aws IAM service
type IamAPI interface {
	GetRole(
		ctx context.Context,
		params *iam.GetRoleInput,
		optFns ...func(*iam.Options),
	) (*iam.GetRoleOutput, error)
}

// StsAPI is an interface used to mock API calls made to the aws STS service
type StsAPI interface {
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}

// RoleArn returns the ARN for the given role. Values that are already
// ARNs are returned unchanged.
func RoleArn(ctx context.Context, api IamAPI, role string) (string, error) {
	if strings.HasPrefix(role, "arn:") {
		return role, nil
	}

	res, err := api.GetRole(ctx, &iam.GetRoleInput{
		RoleName: &role,
	})
	if err != nil {
		if resourceNotExists(err) {
			return "", fmt.Errorf("%w: %s", ErrRoleNotFound, role)
		}
		return "", err
	}

	return *res.Role.Arn, nil
}

// AccountID returns the account of the credentials in use
func AccountID(ctx context.Context, api StsAPI) (string, error) {
	res, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", err
	}
	if res.Account == nil {
		return "", errors.New("caller identity has no account")
	}

	return *res.Account, nil
}

func resourceNotExists(err error) bool {
	var notFound *types.NoSuchEntityException
	return errors.As(err, &notFound)
}
