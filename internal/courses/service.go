package courses

import (
	"fmt"
	"strings"

	"github.com/sagrapp/backend/internal/models"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// ── App Reads ───────────────────────────────────────────

func (s *Service) ListCourses(userID int64) ([]models.CourseSummary, error) {
	return s.store.ListCoursesWithProgress(userID)
}

func (s *Service) GetCourseDetail(courseID, userID int64) (*models.CourseDetailResponse, error) {
	course, err := s.store.GetCourse(courseID)
	if err != nil {
		return nil, err
	}

	lessons, err := s.store.ListLessonsWithProgress(courseID, userID)
	if err != nil {
		return nil, err
	}

	return &models.CourseDetailResponse{
		Course:  *course,
		Lessons: lessons,
	}, nil
}

// GetLessonContent assembles everything a lesson session needs. Correct
// answers never leave the server.
func (s *Service) GetLessonContent(lessonID int64) (*models.LessonContentResponse, error) {
	lesson, err := s.store.GetLesson(lessonID)
	if err != nil {
		return nil, err
	}

	questions, err := s.store.ListQuizQuestions(lessonID)
	if err != nil {
		return nil, err
	}

	decision, err := s.store.GetEnabledDecision(lessonID)
	if err != nil {
		return nil, err
	}

	activities, err := s.store.ListActivities(lessonID)
	if err != nil {
		return nil, err
	}

	return &models.LessonContentResponse{
		Lesson:     *lesson,
		Questions:  questions,
		Decision:   decision,
		Activities: activities,
	}, nil
}

func (s *Service) RespondDecision(userID, decisionID int64, response string) (*models.UserDecision, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, fmt.Errorf("response is required")
	}
	return s.store.CreateDecisionResponse(userID, decisionID, response)
}

// ── Admin Writes ────────────────────────────────────────

func (s *Service) CreateCourse(req models.CourseRequest) (*models.Course, error) {
	if err := validateCourse(req); err != nil {
		return nil, err
	}
	return s.store.CreateCourse(req)
}

func (s *Service) UpdateCourse(courseID int64, req models.CourseRequest) error {
	if err := validateCourse(req); err != nil {
		return err
	}
	return s.store.UpdateCourse(courseID, req)
}

func (s *Service) DeleteCourse(courseID int64) error {
	return s.store.DeleteCourse(courseID)
}

func (s *Service) CreateLesson(courseID int64, req models.LessonRequest) (*models.Lesson, error) {
	if err := validateLesson(req); err != nil {
		return nil, err
	}
	return s.store.CreateLesson(courseID, req)
}

func (s *Service) UpdateLesson(lessonID int64, req models.LessonRequest) error {
	if err := validateLesson(req); err != nil {
		return err
	}
	return s.store.UpdateLesson(lessonID, req)
}

func (s *Service) DeleteLesson(lessonID int64) error {
	return s.store.DeleteLesson(lessonID)
}

func (s *Service) ListQuestions(lessonID int64) ([]models.Question, error) {
	if _, err := s.store.GetLesson(lessonID); err != nil {
		return nil, err
	}
	return s.store.ListQuestions(lessonID)
}

func (s *Service) CreateQuestion(lessonID int64, req models.QuestionRequest) (*models.Question, error) {
	if err := ValidateQuestion(req); err != nil {
		return nil, err
	}
	return s.store.CreateQuestion(lessonID, req)
}

func (s *Service) UpdateQuestion(questionID int64, req models.QuestionRequest) error {
	if err := ValidateQuestion(req); err != nil {
		return err
	}
	return s.store.UpdateQuestion(questionID, req)
}

func (s *Service) DeleteQuestion(questionID int64) error {
	return s.store.DeleteQuestion(questionID)
}

func (s *Service) Move(kind string, id int64, direction string) error {
	up, err := parseDirection(direction)
	if err != nil {
		return err
	}
	switch kind {
	case "course":
		return s.store.MoveCourse(id, up)
	case "lesson":
		return s.store.MoveLesson(id, up)
	case "question":
		return s.store.MoveQuestion(id, up)
	default:
		return fmt.Errorf("unknown move kind %q", kind)
	}
}

// ── Validation ──────────────────────────────────────────

func validateCourse(req models.CourseRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func validateLesson(req models.LessonRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(req.DevotionalText) == "" {
		return fmt.Errorf("devotional_text is required")
	}
	return nil
}

// ValidateQuestion checks a question for structural problems: known
// type, sensible option count, and a correct answer that the options
// actually contain (fill-blank questions have no options to match).
func ValidateQuestion(req models.QuestionRequest) error {
	if strings.TrimSpace(req.QuestionText) == "" {
		return fmt.Errorf("question_text is required")
	}
	if strings.TrimSpace(req.CorrectAnswer) == "" {
		return fmt.Errorf("correct_answer is required")
	}

	switch req.QuestionType {
	case models.QuestionMultipleChoice:
		if len(req.Options) < 2 {
			return fmt.Errorf("multiple_choice questions need at least 2 options")
		}
		if !containsOption(req.Options, req.CorrectAnswer) {
			return fmt.Errorf("correct_answer must be one of the options")
		}
	case models.QuestionTrueFalse:
		if len(req.Options) != 2 {
			return fmt.Errorf("true_false questions need exactly 2 options")
		}
		if !containsOption(req.Options, req.CorrectAnswer) {
			return fmt.Errorf("correct_answer must be one of the options")
		}
	case models.QuestionFillBlank:
		// No options to check
	default:
		return fmt.Errorf("invalid question_type %q", req.QuestionType)
	}
	return nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}

func parseDirection(direction string) (up bool, err error) {
	switch direction {
	case "up":
		return true, nil
	case "down":
		return false, nil
	default:
		return false, fmt.Errorf("direction must be 'up' or 'down'")
	}
}
