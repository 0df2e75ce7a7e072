package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is returned when the document is not valid JSON.
	ErrMalformedInput = errors.New("malformed input")
	// ErrMissingField is returned when a required value (or one of its
	// containers) is absent or has an unexpected JSON type.
	ErrMissingField = errors.New("missing field")
)

// Project holds the credentials of one Firebase project as used by the
// FirebaseOptions builder.
type Project struct {
	ApplicationID string `json:"applicationId" yaml:"applicationId"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	APIKey        string `json:"apiKey" yaml:"apiKey"`
	DatabaseURL   string `json:"databaseUrl" yaml:"databaseUrl"`
	StorageBucket string `json:"storageBucket" yaml:"storageBucket"`
}

// Validate checks that every credential value is set.
func (p *Project) Validate() error {
	fields := []struct {
		path  string
		value string
	}{
		{pathAppID, p.ApplicationID},
		{pathProjectID, p.ProjectID},
		{pathAPIKey, p.APIKey},
		{pathDatabaseURL, p.DatabaseURL},
		{pathBucket, p.StorageBucket},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrMissingField, f.path)
		}
	}
	return nil
}

// Parse decodes a google-services.json document and extracts the project
// credentials.
func Parse(data []byte) (*Project, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %s, expected object", ErrMalformedInput, kindOf(doc))
	}
	return Extract(obj)
}

// Extract reads the five credential values from an already decoded document.
func Extract(doc map[string]interface{}) (*Project, error) {
	root := node{path: "", value: doc}
	client := root.field("client").index(0)
	projectInfo := root.field("project_info")

	project := &Project{}
	var err error
	if project.ApplicationID, err = client.field("client_info").field("mobilesdk_app_id").string(); err != nil {
		return nil, err
	}
	if project.ProjectID, err = projectInfo.field("project_id").string(); err != nil {
		return nil, err
	}
	if project.APIKey, err = client.field("api_key").index(0).field("current_key").string(); err != nil {
		return nil, err
	}
	if project.DatabaseURL, err = projectInfo.field("firebase_url").string(); err != nil {
		return nil, err
	}
	if project.StorageBucket, err = projectInfo.field("storage_bucket").string(); err != nil {
		return nil, err
	}
	return project, nil
}
