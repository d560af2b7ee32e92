package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrRootNotObject is returned when a document's top-level value is not a mapping.
var ErrRootNotObject = errors.New("document root must be an object")

// Decode parses a catalog, choosing the format from the name's extension.
// `.yaml` and `.yml` are read as YAML, everything else as JSON.
func Decode(name string, data []byte) (*Document, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return DecodeYAML(name, data)
	default:
		return DecodeJSON(name, data)
	}
}

// DecodeJSON parses a JSON catalog keeping object fields in document order.
func DecodeJSON(name string, data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	if !root.IsObject() {
		return nil, ErrRootNotObject
	}
	return NewDocument(name, root), nil
}

func decodeJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch v := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		return Number(v.String()), nil
	case string:
		return String(v), nil
	case json.Delim:
		switch v {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeJSONObject(dec *json.Decoder) (*Node, error) {
	obj := Object()
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		// A repeated key keeps its first position and takes the last value.
		if i, seen := index[key]; seen {
			obj.Fields[i].Value = val
			continue
		}
		index[key] = len(obj.Fields)
		obj.Fields = append(obj.Fields, F(key, val))
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeJSONArray(dec *json.Decoder) (*Node, error) {
	arr := Array()
	for dec.More() {
		item, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// DecodeYAML parses a YAML catalog keeping mapping order.
// An empty YAML file yields an empty document.
func DecodeYAML(name string, data []byte) (*Document, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewDocument(name, Object()), nil
	}

	root := convertYAML(doc.Content[0])
	if !root.IsObject() {
		return nil, ErrRootNotObject
	}
	return NewDocument(name, root), nil
}

func convertYAML(n *yaml.Node) *Node {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return Null()
		}
		return convertYAML(n.Alias)
	case yaml.MappingNode:
		obj := Object()
		index := make(map[string]int)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			val := convertYAML(n.Content[i+1])
			if j, seen := index[key]; seen {
				obj.Fields[j].Value = val
				continue
			}
			index[key] = len(obj.Fields)
			obj.Fields = append(obj.Fields, F(key, val))
		}
		return obj
	case yaml.SequenceNode:
		arr := Array()
		for _, c := range n.Content {
			arr.Items = append(arr.Items, convertYAML(c))
		}
		return arr
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Null()
		case "!!bool":
			return &Node{Kind: KindBool, Value: n.Value}
		case "!!int", "!!float":
			return Number(n.Value)
		default:
			return String(n.Value)
		}
	default:
		return Null()
	}
}
