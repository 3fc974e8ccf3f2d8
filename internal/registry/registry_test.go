package registry

import (
	"strings"
	"testing"
)

type stubBackend struct {
	id    string
	title string
	runs  int
}

func (b *stubBackend) ID() string    { return b.id }
func (b *stubBackend) Title() string { return b.title }

func (b *stubBackend) Run(RunOptions) error {
	b.runs++
	return nil
}

func stubFactory(id, title string) Factory {
	return func() Backend { return &stubBackend{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-zeta", stubFactory("test-zeta", "Zeta"))
	Register("test-alpha", stubFactory("test-alpha", "Alpha"))

	if !Exists("test-alpha") {
		t.Error("Exists(test-alpha) = false, expected true")
	}
	if Exists("test-missing") {
		t.Error("Exists(test-missing) = true, expected false")
	}

	b, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if b.ID() != "test-alpha" || b.Title() != "Alpha" {
		t.Errorf("Create() = %s/%s, expected test-alpha/Alpha", b.ID(), b.Title())
	}
	if err := b.Run(RunOptions{}); err != nil {
		t.Errorf("Run() error: %v", err)
	}

	other, _ := Create("test-alpha")
	if other == b {
		t.Error("Create() should return a fresh instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test-nope")
	if err == nil || !strings.Contains(err.Error(), "test-nope") {
		t.Errorf("Create() error = %v, expected unknown backend", err)
	}
}

func TestListSorted(t *testing.T) {
	Register("test-list-b", stubFactory("test-list-b", "B"))
	Register("test-list-a", stubFactory("test-list-a", "A"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "test-list-a" {
			found = info.Title == "A"
		}
	}
	if !found {
		t.Error("List() missing test-list-a with title A")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", stubFactory("test-dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate ID")
		}
	}()
	Register("test-dup", stubFactory("test-dup", "Dup"))
}
