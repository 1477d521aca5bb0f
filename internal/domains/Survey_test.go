package domains

import "testing"

func TestSurveyInputQuestions(t *testing.T) {
	survey := Survey{Questions: []Question{
		{ID: 1, Type: KindSectionBreak},
		{ID: 2, Type: KindShortAnswer},
		{ID: 3, Type: KindInstruction},
		{ID: 4, Type: KindCheckbox},
	}}

	if !survey.HasInputQuestions() {
		t.Fatal("survey with fields must report input questions")
	}

	inputs := survey.InputQuestions()
	if len(inputs) != 2 || inputs[0].ID != 2 || inputs[1].ID != 4 {
		t.Fatalf("input questions = %+v", inputs)
	}

	layoutOnly := Survey{Questions: []Question{{ID: 1, Type: KindPageBreak}}}
	if layoutOnly.HasInputQuestions() {
		t.Fatal("layout-only survey must not report input questions")
	}
}

func TestQuestionByID(t *testing.T) {
	survey := Survey{Questions: []Question{{ID: 5}, {ID: 8}}}
	if i := survey.QuestionByID(8); i != 1 {
		t.Fatalf("index = %d, want 1", i)
	}
	if i := survey.QuestionByID(99); i != -1 {
		t.Fatalf("index = %d, want -1", i)
	}
}

func TestSnapshotSurvey(t *testing.T) {
	empty := SurveySnapshot{}.Survey()
	if empty.Questions == nil {
		t.Fatal("empty snapshot must yield a non-nil question slice")
	}

	snapshot := SurveySnapshot{
		Questions:         []Question{{ID: 1, Type: KindShortAnswer}},
		SurveyTitle:       "Feedback",
		SurveyDescription: "Tell us more",
	}
	survey := snapshot.Survey()
	if survey.Title != "Feedback" || survey.Description != "Tell us more" || len(survey.Questions) != 1 {
		t.Fatalf("survey = %+v", survey)
	}
}
