package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML sequence of mappings. Like DecodeJSON, a document
// that is not a sequence yields an empty Dataset.
func DecodeYAML(b []byte) (Dataset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, nil
	}
	ds := make(Dataset, 0, len(root.Content))
	for _, item := range root.Content {
		var rec Record
		if item.Kind == yaml.MappingNode {
			for i := 0; i+1 < len(item.Content); i += 2 {
				rec.Set(item.Content[i].Value, yamlScalar(item.Content[i+1]))
			}
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

func yamlScalar(n *yaml.Node) Value {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		out, err := yaml.Marshal(n)
		if err != nil {
			return Text("")
		}
		return Text(strings.TrimSpace(string(out)))
	}
	switch n.ShortTag() {
	case "!!null":
		return Null()
	case "!!int", "!!float":
		if f, err := strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64); err == nil {
			return Number(f)
		}
		return Text(n.Value)
	default:
		return Text(n.Value)
	}
}
