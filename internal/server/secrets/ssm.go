package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	sc "github.com/taskvault/taskvault/internal/server/config"
)

// ssmAPI is the subset of the SSM client used here. Narrowed so tests can
// substitute a stub without touching AWS.
type ssmAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSMProvider fetches the signing secret from AWS Systems Manager
// Parameter Store, decrypting SecureString parameters.
type SSMProvider struct {
	client        ssmAPI
	parameterName string
}

func NewSSMProvider(cfg *sc.Config) (*SSMProvider, error) {
	if cfg.SSMParameterName == "" {
		return nil, errors.New("ssm parameter name is not configured")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg, func(o *ssm.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})

	return &SSMProvider{client: client, parameterName: cfg.SSMParameterName}, nil
}

func (p *SSMProvider) GetSigningSecret(ctx context.Context) (string, error) {
	out, err := p.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(p.parameterName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("fetching parameter %s: %w", p.parameterName, err)
	}

	if out.Parameter == nil || out.Parameter.Value == nil || *out.Parameter.Value == "" {
		return "", fmt.Errorf("parameter %s has no value", p.parameterName)
	}

	return *out.Parameter.Value, nil
}
