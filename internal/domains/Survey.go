package domains

type Survey struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// HasInputQuestions decides whether a rendered form gets a submit control.
func (s Survey) HasInputQuestions() bool {
	for _, question := range s.Questions {
		if question.Type.Input() {
			return true
		}
	}
	return false
}

// InputQuestions returns the questions that produce form fields, in order.
func (s Survey) InputQuestions() []Question {
	questions := make([]Question, 0, len(s.Questions))
	for _, question := range s.Questions {
		if question.Type.Input() {
			questions = append(questions, question)
		}
	}
	return questions
}

// QuestionByID returns the index of the question with the given id, or -1.
func (s Survey) QuestionByID(id int) int {
	for i, question := range s.Questions {
		if question.ID == id {
			return i
		}
	}
	return -1
}

// SurveySnapshot is the persisted form of the aggregate. The field names are
// the storage contract and must not change.
type SurveySnapshot struct {
	Questions         []Question `json:"questions"`
	CurrentQuestionID int        `json:"currentQuestionId"`
	SurveyTitle       string     `json:"surveyTitle"`
	SurveyDescription string     `json:"surveyDescription"`
	Timestamp         string     `json:"timestamp"`
}

func (s SurveySnapshot) Survey() Survey {
	questions := s.Questions
	if questions == nil {
		questions = []Question{}
	}
	return Survey{
		Title:       s.SurveyTitle,
		Description: s.SurveyDescription,
		Questions:   questions,
	}
}

type SurveyUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (u SurveyUpdate) HasChanges() bool {
	return u.Title != nil || u.Description != nil
}
