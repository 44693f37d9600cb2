package uploads

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
)

// Signer issues short-lived upload authorizations for direct-to-Cloudinary
// uploads. It signs exactly the parameter set the provider re-derives on its
// side; the API secret itself is never handed to the client.
type Signer struct {
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

func NewSigner(cloudName, apiKey, apiSecret string) *Signer {
	return &Signer{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

// WithClock replaces the time source for deterministic tests.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s.now = now
	return s
}

type UploadAuthorization struct {
	Signature    string `json:"signature"`
	Timestamp    int64  `json:"timestamp"`
	CloudName    string `json:"cloud_name"`
	APIKey       string `json:"api_key"`
	Folder       string `json:"folder"`
	ResourceType string `json:"resource_type"`
}

// Sign authorizes one upload into folder. Only timestamp and folder are
// covered by the signature; resource_type travels in the upload URL and is
// not part of the provider's signing input.
func (s *Signer) Sign(folder, resourceType string) (*UploadAuthorization, error) {
	timestamp := s.now().Unix()

	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	params.Set("folder", folder)

	signature, err := api.SignParameters(params, s.apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload parameters: %w", err)
	}

	return &UploadAuthorization{
		Signature:    signature,
		Timestamp:    timestamp,
		CloudName:    s.cloudName,
		APIKey:       s.apiKey,
		Folder:       folder,
		ResourceType: resourceType,
	}, nil
}
