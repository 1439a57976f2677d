package config

import (
	"fmt"
	"slices"

	"golang.org/x/oauth2"

	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// Cloud services the server can store output in.
const (
	Dropbox     = "dropbox"
	GoogleDrive = "gdrive"
	OneDrive    = "onedrive"
	AWSS3       = "aws_s3"
	FTP         = "ftp"
	SFTP        = "sftp"
)

var oauthServices = []string{Dropbox, GoogleDrive, OneDrive}

// AvailableServices lists every supported output location.
func AvailableServices() []string {
	return append(slices.Clone(oauthServices), AWSS3, FTP, SFTP)
}

// CloudAccessToken sends the output to cloud storage instead of returning it.
type CloudAccessToken interface {
	// Service is the output_location value.
	Service() string
	AsDict() map[string]any
}

// OAuthToken authorizes access to Dropbox, Google Drive or OneDrive.
type OAuthToken struct {
	service string
	Token   string `validate:"required"`
}

// NewOAuthToken returns ErrUnknownCloudService for services without OAuth.
func NewOAuthToken(service, token string) (*OAuthToken, error) {
	if !slices.Contains(oauthServices, service) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCloudService, service)
	}
	t := &OAuthToken{service: service, Token: token}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// OAuthTokenFromOAuth2 uses the access token of an oauth2 token.
func OAuthTokenFromOAuth2(service string, token *oauth2.Token) (*OAuthToken, error) {
	if token == nil || !token.Valid() {
		return nil, fmt.Errorf("%w: expired or empty oauth2 token", ErrInvalidConfig)
	}
	return NewOAuthToken(service, token.AccessToken)
}

func (t *OAuthToken) Service() string {
	return t.service
}

func (t *OAuthToken) Validate() error {
	if err := validate.Struct(t); err != nil {
		return validationError(err)
	}
	return nil
}

func (t *OAuthToken) AsDict() map[string]any {
	return map[string]any{
		"output_location":    t.service,
		"cloud_access_token": t.Token,
	}
}

// AWSToken gives access to an S3 bucket.
type AWSToken struct {
	AccessKeyID     string `validate:"required"`
	SecretAccessKey string `validate:"required"`
}

// NewAWSToken validates that both keys are present.
func NewAWSToken(accessKeyID, secretAccessKey string) (*AWSToken, error) {
	t := &AWSToken{AccessKeyID: accessKeyID, SecretAccessKey: secretAccessKey}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *AWSToken) Service() string {
	return AWSS3
}

func (t *AWSToken) Validate() error {
	if err := validate.Struct(t); err != nil {
		return validationError(err)
	}
	return nil
}

func (t *AWSToken) AsDict() map[string]any {
	return map[string]any{
		"output_location": AWSS3,
		"cloud_access_token": map[string]any{
			"access_key":        t.AccessKeyID,
			"secret_access_key": t.SecretAccessKey,
		},
	}
}

// FTPToken gives access to an FTP or SFTP server.
type FTPToken struct {
	sftp     bool
	Host     string               `validate:"required"`
	Port     optional.Option[int] `validate:"-"`
	User     optional.Option[string]
	Password optional.Option[string]
}

// NewFTPToken returns a token for a plain FTP server.
func NewFTPToken(host string) (*FTPToken, error) {
	return newFTPToken(host, false)
}

// NewSFTPToken returns a token for an SFTP server.
func NewSFTPToken(host string) (*FTPToken, error) {
	return newFTPToken(host, true)
}

func newFTPToken(host string, sftp bool) (*FTPToken, error) {
	t := &FTPToken{Host: host, sftp: sftp}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *FTPToken) Service() string {
	if t.sftp {
		return SFTP
	}
	return FTP
}

func (t *FTPToken) Validate() error {
	if err := validate.Struct(t); err != nil {
		return validationError(err)
	}
	if t.Port.Has() {
		if err := validate.Var(t.Port.Value(), "min=1,max=65535"); err != nil {
			return fmt.Errorf("%w: Port is out of range", ErrInvalidConfig)
		}
	}
	return nil
}

func (t *FTPToken) AsDict() map[string]any {
	token := map[string]any{"host": t.Host}
	put(token, []entry{
		{"port", t.Port},
		{"user", t.User},
		{"password", t.Password},
	})
	return map[string]any{
		"output_location":    t.Service(),
		"cloud_access_token": token,
	}
}
