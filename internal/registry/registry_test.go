package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Game { return &stubGame{id: "test_b"} })
	Register("test_a", func() Game { return &stubGame{id: "test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Fatal("Exists() reported wrong registrations")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("created %q, expected test_a", g.ID())
	}
	if Title("test_b") != "TEST_B" || Title("test_missing") != "test_missing" {
		t.Error("Title() lookup incorrect")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "test_") {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "test_a" || ids[1] != "test_b" {
		t.Errorf("List() = %v, expected sorted [test_a test_b]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
}
