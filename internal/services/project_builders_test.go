package services

import (
	"testing"
	"time"

	"taskdash/internal/validation"
)

func date(s string) validation.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return validation.Date{Time: t, Set: true, Valid: true}
}

func TestBuildTeamMembers(t *testing.T) {
	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	joined := date("2023-05-01")

	members := buildTeamMembers([]validation.TeamMemberInput{
		{Name: "bob", Role: "dev", JoinedDate: joined},
		{Name: "carol"},
	}, now)

	if len(members) != 2 {
		t.Fatalf("members = %d, want 2", len(members))
	}
	if !members[0].JoinedDate.Equal(joined.Time) {
		t.Errorf("supplied joinedDate = %v, want %v", members[0].JoinedDate, joined.Time)
	}
	if !members[1].JoinedDate.Equal(now) {
		t.Errorf("defaulted joinedDate = %v, want %v", members[1].JoinedDate, now)
	}
	if members[0].Name != "bob" || members[0].Role != "dev" {
		t.Errorf("member fields not carried: %+v", members[0])
	}
}

func TestBuildDocuments(t *testing.T) {
	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	uploaded := date("2024-01-11")

	docs := buildDocuments([]validation.DocumentInput{
		{Name: "deck", URL: "https://files.example/deck.pdf", UploadDate: uploaded},
		{Name: "notes", URL: "https://files.example/notes.md"},
	}, now)

	if len(docs) != 2 {
		t.Fatalf("docs = %d, want 2", len(docs))
	}
	if docs[0].Name != "deck" || docs[0].URL != "https://files.example/deck.pdf" {
		t.Errorf("document fields not carried: %+v", docs[0])
	}
	if !docs[0].UploadDate.Equal(uploaded.Time) {
		t.Errorf("supplied uploadDate = %v, want %v", docs[0].UploadDate, uploaded.Time)
	}
	if !docs[1].UploadDate.Equal(now) {
		t.Errorf("defaulted uploadDate = %v, want %v", docs[1].UploadDate, now)
	}
}
