package metadata

import (
	"bytes"
	"os"
	"reflect"
	"testing"
)

func TestWriteDocument_RoundTrip(t *testing.T) {
	s := testStore(t)

	doc := &Document{Environments: []Environment{
		{"name": "envA", "python": "3.12", "packages": []any{"numpy", "scipy"}},
		{"name": "envB"},
	}}

	if err := s.WriteDocument(doc, s.UserSource()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	loaded, err := s.LoadUserDocument()
	if err != nil {
		t.Fatalf("LoadUserDocument: %v", err)
	}
	if !reflect.DeepEqual(loaded, doc) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", loaded, doc)
	}
}

func TestWriteDocument_Indented(t *testing.T) {
	s := testStore(t)

	doc := &Document{Environments: []Environment{{"name": "envA"}}}
	if err := s.WriteDocument(doc, s.UserSource()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	path, _ := s.MetadataPath(s.UserSource())
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("\n    \"environments\"")) {
		t.Errorf("metadata should be written with 4-space indentation, got:\n%s", data)
	}
}

func TestWriteDocument_InvalidSource(t *testing.T) {
	s := testStore(t)
	err := s.WriteDocument(EmptyDocument(), Source{Type: "nonsense"})
	if err == nil {
		t.Error("WriteDocument with invalid source should fail")
	}
}

func TestWriteDocument_NoTempLeftover(t *testing.T) {
	s := testStore(t)
	if err := s.WriteDocument(EmptyDocument(), s.UserSource()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	dir, _ := s.envsDir(s.UserSource())
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != MetadataFileName {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestRemoveEnvironment_FromGroup(t *testing.T) {
	s := testStore(t, "teamx")
	seed(t, s, s.UserSource(), `{"environments": [{"name": "envA"}]}`)
	seed(t, s, GroupSource("teamx"),
		`{"environments": [{"name": "one"}, {"name": "envB", "python": "3.10"}, {"name": "three"}]}`)

	removal, _, err := s.RemoveEnvironment("envB")
	if err != nil {
		t.Fatalf("RemoveEnvironment: %v", err)
	}
	if removal == nil {
		t.Fatal("expected a removal")
	}
	if removal.Source.Type != SourceGroup || removal.Source.Name != "teamx" {
		t.Errorf("source = %+v, want group teamx", removal.Source)
	}
	if removal.Env["python"] != "3.10" {
		t.Errorf("removed env python = %v, want 3.10", removal.Env["python"])
	}

	// Survivors keep their original order.
	doc, notice := s.LoadGroupDocument("teamx")
	if notice != nil {
		t.Fatalf("reload notice: %+v", notice)
	}
	got := envNames(doc)
	want := []string{"one", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("surviving envs = %v, want %v", got, want)
	}
}

func TestRemoveEnvironment_FromUser(t *testing.T) {
	s := testStore(t)
	seed(t, s, s.UserSource(), `{"environments": [{"name": "envA"}, {"name": "envB"}]}`)

	removal, _, err := s.RemoveEnvironment("envA")
	if err != nil {
		t.Fatalf("RemoveEnvironment: %v", err)
	}
	if removal == nil {
		t.Fatal("expected a removal")
	}
	if removal.Source.Type != SourceUser || removal.Source.Name != "alice" {
		t.Errorf("source = %+v, want user alice", removal.Source)
	}

	doc, err := s.LoadUserDocument()
	if err != nil {
		t.Fatal(err)
	}
	if got := envNames(doc); len(got) != 1 || got[0] != "envB" {
		t.Errorf("surviving envs = %v, want [envB]", got)
	}
}

func TestRemoveEnvironment_NotFound(t *testing.T) {
	s := testStore(t, "teamx")
	path := seed(t, s, s.UserSource(), `{"environments": [{"name": "envA"}]}`)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	removal, _, err := s.RemoveEnvironment("ghost")
	if err != nil {
		t.Fatalf("RemoveEnvironment: %v", err)
	}
	if removal != nil {
		t.Errorf("removal = %+v, want nil", removal)
	}

	// No mutation: file is byte-for-byte unchanged.
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("metadata file changed despite not-found removal")
	}
}

func TestRemoveEnvironment_RemovesOnlyFirstDuplicate(t *testing.T) {
	s := testStore(t)
	seed(t, s, s.UserSource(),
		`{"environments": [{"name": "dup", "rank": 1}, {"name": "dup", "rank": 2}]}`)

	removal, _, err := s.RemoveEnvironment("dup")
	if err != nil {
		t.Fatalf("RemoveEnvironment: %v", err)
	}
	if removal == nil {
		t.Fatal("expected a removal")
	}
	if rank, _ := removal.Env["rank"].(float64); rank != 1 {
		t.Errorf("removed rank = %v, want 1", removal.Env["rank"])
	}

	doc, err := s.LoadUserDocument()
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Environments) != 1 {
		t.Fatalf("environments = %d, want 1", len(doc.Environments))
	}
	if rank, _ := doc.Environments[0]["rank"].(float64); rank != 2 {
		t.Errorf("surviving rank = %v, want 2", doc.Environments[0]["rank"])
	}
}
