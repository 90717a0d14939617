package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics keeps the documentation in sync with itself: every topic
// listed in readme.md must load, and every topic file must be listed in
// readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q listed in readme.md cannot be loaded: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error: %v", err)
	}
	listed := make(map[string]bool)
	for _, topic := range topicsInReadme {
		listed[topic] = true
	}
	for _, topic := range all {
		if !listed[topic] {
			t.Errorf("topic file %q is not listed in readme.md", topic)
		}
	}
}

// TestTopicHeadings checks that every topic opens with a level-1 heading
// matching its name, walking the markdown AST.
func TestTopicHeadings(t *testing.T) {
	all, err := getAllWithReadme()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q): %v", topic, err)
		}
		source := []byte(content)
		root := goldmark.DefaultParser().Parse(text.NewReader(source))

		heading, ok := root.FirstChild().(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q does not open with a level-1 heading", topic)
			continue
		}
		segment := heading.Lines().At(0)
		title := string(segment.Value(source))
		if !strings.Contains(title, topic) && topic != "readme" {
			t.Errorf("topic %q heading is %q, want it to name the topic", topic, title)
		}
	}
}

func getAllWithReadme() ([]string, error) {
	all, err := GetAllTopics()
	if err != nil {
		return nil, err
	}
	return append(all, "readme"), nil
}
