package driver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdaTypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/josenarvaezp/gluego/internal/lambdas"
)

// InvokeResult is the outcome of a job run on the lambda backend
type InvokeResult = lambdas.JobResponse

// InvokeLambda runs the job synchronously on the lambda function
func (d *Driver) InvokeLambda(ctx context.Context, functionName string, arguments map[string]string) (*InvokeResult, error) {
	requestPayload, err := json.Marshal(&lambdas.JobRequest{
		Arguments: arguments,
	})
	if err != nil {
		return nil, err
	}

	res, err := d.FaasAPI.Invoke(
		ctx,
		&lambda.InvokeInput{
			FunctionName:   aws.String(functionName),
			Payload:        requestPayload,
			InvocationType: lambdaTypes.InvocationTypeRequestResponse,
		},
	)
	if err != nil {
		return nil, err
	}

	if res.FunctionError != nil {
		return nil, fmt.Errorf("function %s failed (%s): %s", functionName, *res.FunctionError, res.Payload)
	}

	var result InvokeResult
	if err := json.Unmarshal(res.Payload, &result); err != nil {
		return nil, fmt.Errorf("decoding response of %s: %w", functionName, err)
	}

	return &result, nil
}
