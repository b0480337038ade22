package document

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// sectionFromMapping converts a yaml.v3 mapping node into a Section,
// carrying over per-node comments and key order.
func sectionFromMapping(node *yaml.Node) (*Section, error) {
	section := NewSection()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var block Block
		if valueNode.Kind == yaml.MappingNode {
			child, err := sectionFromMapping(valueNode)
			if err != nil {
				return nil, err
			}
			block = child
		} else {
			var value any
			if err := valueNode.Decode(&value); err != nil {
				return nil, fmt.Errorf("decoding value of %q: %w", keyNode.Value, err)
			}
			block = NewEntry(value)
		}

		attachComments(block, keyNode, valueNode)
		section.SetChild(keyNode.Value, block)
	}
	return section, nil
}

func attachComments(block Block, keyNode, valueNode *yaml.Node) {
	comments := block.Comments()
	if keyNode.HeadComment != "" {
		comments.Before = strings.Split(keyNode.HeadComment, "\n")
	}
	switch {
	case valueNode.LineComment != "":
		comments.Inline = valueNode.LineComment
	case keyNode.LineComment != "":
		comments.Inline = keyNode.LineComment
	}
	switch {
	case keyNode.FootComment != "":
		comments.After = strings.Split(keyNode.FootComment, "\n")
	case valueNode.FootComment != "":
		comments.After = strings.Split(valueNode.FootComment, "\n")
	}
}

// mappingNode converts a Section back into a yaml.v3 mapping node.
func mappingNode(section *Section) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range section.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		child := section.children[key]

		var valueNode *yaml.Node
		switch b := child.(type) {
		case *Section:
			inner, err := mappingNode(b)
			if err != nil {
				return nil, err
			}
			valueNode = inner
		case *Entry:
			valueNode = &yaml.Node{}
			if err := valueNode.Encode(b.Value()); err != nil {
				return nil, fmt.Errorf("encoding value of %q: %w", key, err)
			}
		}

		comments := child.Comments()
		if len(comments.Before) > 0 {
			keyNode.HeadComment = strings.Join(comments.Before, "\n")
		}
		if len(comments.After) > 0 {
			keyNode.FootComment = strings.Join(comments.After, "\n")
		}
		if comments.Inline != "" {
			valueNode.LineComment = comments.Inline
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
