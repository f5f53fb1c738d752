package validation

import (
	"encoding/json"
	"testing"
)

func TestProjectCreateInputDocuments(t *testing.T) {
	body := []byte(`{
		"name": "rollout",
		"projectManager": "alice",
		"startDate": "2024-01-10",
		"documents": [{"name": "kickoff deck", "url": "https://files.example/deck.pdf", "uploadDate": "2024-01-11"}],
		"milestones": [{"title": "phase one", "dueDate": "2024-02-01"}]
	}`)

	var in ProjectCreateInput
	if err := json.Unmarshal(body, &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errs := Validate(in); errs != nil {
		t.Fatalf("expected valid input, got %v", errs)
	}

	if len(in.Documents) != 1 {
		t.Fatalf("documents = %d, want 1", len(in.Documents))
	}
	doc := in.Documents[0]
	if doc.Name != "kickoff deck" || doc.URL != "https://files.example/deck.pdf" {
		t.Errorf("document = %+v, fields not carried", doc)
	}
	if !doc.UploadDate.Set || !doc.UploadDate.Valid {
		t.Errorf("uploadDate not parsed: %+v", doc.UploadDate)
	}

	if len(in.Milestones) != 1 || in.Milestones[0].Title != "phase one" {
		t.Errorf("milestones = %+v, want one titled 'phase one'", in.Milestones)
	}
}

func TestProjectDocumentFieldViolations(t *testing.T) {
	in := ProjectCreateInput{
		Name:           "rollout",
		ProjectManager: "alice",
		StartDate:      mustDate("2024-01-10"),
		Documents:      []DocumentInput{{Name: "deck"}},
	}

	errs := Validate(in)
	if !hasFieldError(errs, "documents[0].url") {
		t.Errorf("expected violation on documents[0].url, got %v", errs)
	}
}

func TestProjectUpdateInputDocuments(t *testing.T) {
	body := []byte(`{"documents": [{"name": "handover notes", "url": "https://files.example/notes.md"}]}`)

	var in ProjectUpdateInput
	if err := json.Unmarshal(body, &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errs := Validate(in); errs != nil {
		t.Fatalf("expected valid input, got %v", errs)
	}
	if in.Documents == nil || len(*in.Documents) != 1 {
		t.Fatalf("documents not decoded: %+v", in.Documents)
	}
	if (*in.Documents)[0].URL != "https://files.example/notes.md" {
		t.Errorf("url = %q, not carried", (*in.Documents)[0].URL)
	}
}

func TestTeamMemberJoinedDate(t *testing.T) {
	body := []byte(`{"teamMembers": [{"name": "bob", "joinedDate": "2023-05-01"}, {"name": "carol"}]}`)

	var in ProjectUpdateInput
	if err := json.Unmarshal(body, &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errs := Validate(in); errs != nil {
		t.Fatalf("expected valid input, got %v", errs)
	}

	members := *in.TeamMembers
	if !members[0].JoinedDate.Set || !members[0].JoinedDate.Valid {
		t.Errorf("supplied joinedDate not parsed: %+v", members[0].JoinedDate)
	}
	if members[1].JoinedDate.Set {
		t.Errorf("absent joinedDate marked set: %+v", members[1].JoinedDate)
	}
}

func TestGoalMilestoneAchievementDecode(t *testing.T) {
	body := []byte(`{"milestones": [{"title": "half", "targetValue": 6, "isAchieved": true, "achievedDate": "2024-06-01"}]}`)

	var in GoalUpdateInput
	if err := json.Unmarshal(body, &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errs := Validate(in); errs != nil {
		t.Fatalf("expected valid input, got %v", errs)
	}

	milestones := *in.Milestones
	if len(milestones) != 1 {
		t.Fatalf("milestones = %d, want 1", len(milestones))
	}
	m := milestones[0]
	if !m.IsAchieved {
		t.Error("isAchieved dropped on decode")
	}
	if !m.AchievedDate.Set || !m.AchievedDate.Valid {
		t.Errorf("achievedDate not parsed: %+v", m.AchievedDate)
	}
	if m.TargetValue == nil || *m.TargetValue != 6 {
		t.Errorf("targetValue = %v, want 6", m.TargetValue)
	}
}

func mustDate(s string) Date {
	var d Date
	if err := json.Unmarshal([]byte(`"`+s+`"`), &d); err != nil {
		panic(err)
	}
	return d
}
