package docs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/assetexpl"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md loads, and every topic file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topic := strings.TrimSpace(matches[1])
			topicsInReadme = append(topicsInReadme, topic)
		}
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			_, err := Topic(topic)
			if err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := All()
	if err != nil {
		t.Fatalf("All() failed: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopic_NotFound(t *testing.T) {
	_, err := Topic("nope")
	if !errors.Is(err, assetexpl.ErrNotFound) {
		t.Errorf("Topic(nope) error = %v, want ErrNotFound", err)
	}
}

func TestTopics_Star(t *testing.T) {
	got, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) failed: %v", err)
	}
	all, _ := All()
	for _, topic := range all {
		content, _ := Topic(topic)
		if !strings.Contains(got, content) {
			t.Errorf("Topics(*) does not contain topic %q", topic)
		}
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, file)
		})
	}
}

// codeBlock is a fenced block of a documentation file that the tests run or
// compare. Its info string is one of the block kinds above.
type codeBlock struct {
	kind   string
	script string
	pos    string // file:line of the opening fence
}

// buildBinary compiles ../assetexpl into dir and returns the executable path.
func buildBinary(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "assetexpl")
	if out, err := exec.Command("go", "build", "-o", bin, "../assetexpl/").CombinedOutput(); err != nil {
		t.Fatalf("go build ../assetexpl: %v\n%s", err, out)
	}
	return bin
}

// codeBlocks returns the runnable blocks of a markdown file in document order.
func codeBlocks(t *testing.T, file string) []codeBlock {
	t.Helper()
	src, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("cannot read %s: %v", file, err)
	}

	var blocks []codeBlock
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		switch kind := string(fcb.Info.Segment.Value(src)); kind {
		case bashSetup, bashRun, consoleCheck, bashCheck:
			var script strings.Builder
			lines := fcb.Lines()
			for i := range lines.Len() {
				seg := lines.At(i)
				script.Write(seg.Value(src))
			}
			// goldmark keeps offsets only
			line := bytes.Count(src[:fcb.Info.Segment.Start], []byte("\n")) + 1
			blocks = append(blocks, codeBlock{kind: kind, script: script.String(), pos: fmt.Sprintf("%s:%d", file, line)})
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// session runs the blocks of one file in order. A "console check" compares
// the output of the last "bash run"; a "bash setup" starts in a fresh
// directory.
type session struct {
	env  []string
	dir  string
	last string
}

func (s *session) run(t *testing.T, b codeBlock) {
	t.Helper()
	switch b.kind {
	case consoleCheck:
		want := strings.TrimSpace(b.script)
		got := strings.ReplaceAll(strings.TrimSpace(s.last), "\t", "        ")
		if got != want {
			t.Errorf("%s: unexpected output\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q", b.pos, got, want, got, want)
		}
		return
	case bashSetup:
		s.dir = t.TempDir()
	}

	c := exec.Command("bash", "-c", "set -e; "+b.script)
	c.Dir = s.dir
	c.Env = s.env
	out, err := c.CombinedOutput()
	if b.kind == bashRun {
		s.last = string(out)
	}
	if err == nil {
		return
	}
	if b.kind == bashCheck {
		t.Errorf("%s: %s failed: %v\n%s", b.pos, b.kind, err, out)
		return
	}
	t.Fatalf("%s: %s failed: %v\n%s", b.pos, b.kind, err, out)
}

// runBlocks builds the binary, puts it first in PATH and runs the blocks of
// file. ASSETEXPL_* variables of the caller are dropped.
func runBlocks(t *testing.T, file string) {
	t.Helper()
	blocks := codeBlocks(t, file)
	if len(blocks) == 0 {
		return
	}

	binDir := filepath.Dir(buildBinary(t, t.TempDir()))
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "ASSETEXPL_") {
			env = append(env, kv)
		}
	}
	env = append(env, fmt.Sprintf("PATH=%s%c%s", binDir, os.PathListSeparator, os.Getenv("PATH")))

	s := &session{env: env, dir: t.TempDir()}
	for _, b := range blocks {
		s.run(t, b)
	}
}
