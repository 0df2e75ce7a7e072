package credentials

import (
	"fmt"
	"strconv"
)

const (
	pathAppID       = "client[0].client_info.mobilesdk_app_id"
	pathAPIKey      = "client[0].api_key[0].current_key"
	pathProjectID   = "project_info.project_id"
	pathDatabaseURL = "project_info.firebase_url"
	pathBucket      = "project_info.storage_bucket"
)

// node is a position in a decoded JSON document. The first failed lookup is
// carried along the chain so the caller only checks once.
type node struct {
	path  string
	value interface{}
	err   error
}

func (n node) field(name string) node {
	if n.err != nil {
		return n
	}
	path := name
	if n.path != "" {
		path = n.path + "." + name
	}
	obj, ok := n.value.(map[string]interface{})
	if !ok {
		return node{path: path, err: n.typeError("object")}
	}
	value, ok := obj[name]
	if !ok || value == nil {
		return node{path: path, err: fmt.Errorf("%w: %s", ErrMissingField, path)}
	}
	return node{path: path, value: value}
}

func (n node) index(i int) node {
	if n.err != nil {
		return n
	}
	path := n.path + "[" + strconv.Itoa(i) + "]"
	items, ok := n.value.([]interface{})
	if !ok {
		return node{path: path, err: n.typeError("array")}
	}
	if i >= len(items) || items[i] == nil {
		return node{path: path, err: fmt.Errorf("%w: %s", ErrMissingField, path)}
	}
	return node{path: path, value: items[i]}
}

func (n node) string() (string, error) {
	if n.err != nil {
		return "", n.err
	}
	text, ok := n.value.(string)
	if !ok {
		return "", n.typeError("string")
	}
	return text, nil
}

func (n node) typeError(expected string) error {
	return fmt.Errorf("%w: %s is %s, expected %s", ErrMissingField, n.path, kindOf(n.value), expected)
}

func kindOf(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
