package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ErrDuplicateRegdNo signals a registration-number collision on create.
var ErrDuplicateRegdNo = errors.New("registration number already registered")

// ErrInvalidStatus signals a verification status outside the three-value enum.
var ErrInvalidStatus = errors.New("invalid verification status")

type StudentService interface {
	RegisterStudent(ctx context.Context, req dto.StudentCreateDTO) (*dto.CreatedResponse, error)
	GetStudent(ctx context.Context, id string) (*dto.StudentResponseDTO, error)
	GetStudentByEmail(ctx context.Context, email string) (*dto.StudentResponseDTO, error)
	GetStudentByRegdNo(ctx context.Context, regdNo string) (*dto.StudentResponseDTO, error)
	ListStudents(ctx context.Context) ([]dto.StudentResponseDTO, error)
	ListStudentsByVerification(ctx context.Context, status string) ([]dto.StudentResponseDTO, error)
	ListStudentsBySemester(ctx context.Context, semester string) ([]dto.StudentResponseDTO, error)
	ListStudentsByBranch(ctx context.Context, branch string) ([]dto.StudentResponseDTO, error)
	ListStudentsByBranchAndSemester(ctx context.Context, branch, semester string) ([]dto.StudentResponseDTO, error)
	CountStudents(ctx context.Context) (int64, error)
	CountStudentsByVerification(ctx context.Context, status string) (int64, error)
	UpdateBioData(ctx context.Context, id string, req dto.BioDataDTO) (int64, error)
	UpdateVerification(ctx context.Context, id string, status string) (int64, error)
	DeleteStudent(ctx context.Context, id string) (int64, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

// RegisterStudent creates a student after checking the registration number is
// not already taken. The check-then-insert is not atomic at the store, which
// matches the per-document guarantees this backend relies on.
func (s *studentService) RegisterStudent(ctx context.Context, req dto.StudentCreateDTO) (*dto.CreatedResponse, error) {
	existing, err := s.studentRepo.FindByRegdNo(ctx, req.BioData.RegdNo)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Str("regdNo", req.BioData.RegdNo).Msg("Failed to check registration number")
		return nil, fmt.Errorf("checking registration number: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateRegdNo
	}

	var student model.Student
	if err := copier.Copy(&student.BioData, &req.BioData); err != nil {
		return nil, fmt.Errorf("copying student create request: %w", err)
	}
	student.Verification = model.VerificationPending

	id, err := s.studentRepo.Create(ctx, &student)
	if err != nil {
		log.Error().Err(err).Str("regdNo", req.BioData.RegdNo).Msg("Failed to create student")
		return nil, fmt.Errorf("creating student: %w", err)
	}
	return &dto.CreatedResponse{Message: "Student registered successfully", ID: id}, nil
}

func (s *studentService) GetStudent(ctx context.Context, id string) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student)
}

func (s *studentService) GetStudentByEmail(ctx context.Context, email string) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student)
}

func (s *studentService) GetStudentByRegdNo(ctx context.Context, regdNo string) (*dto.StudentResponseDTO, error) {
	student, err := s.studentRepo.FindByRegdNo(ctx, regdNo)
	if err != nil {
		return nil, err
	}
	return toStudentResponse(student)
}

func (s *studentService) ListStudents(ctx context.Context) ([]dto.StudentResponseDTO, error) {
	students, err := s.studentRepo.FindAll(ctx, repository.ProjectionMinified)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list students")
		return nil, fmt.Errorf("fetching students: %w", err)
	}
	return toStudentResponses(students)
}

func (s *studentService) ListStudentsByVerification(ctx context.Context, status string) ([]dto.StudentResponseDTO, error) {
	vs := model.VerificationStatus(status)
	if !vs.Valid() {
		return nil, ErrInvalidStatus
	}

	students, err := s.studentRepo.FindByVerification(ctx, vs, repository.ProjectionMinified)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("Failed to list students by verification")
		return nil, fmt.Errorf("fetching students by verification: %w", err)
	}
	return toStudentResponses(students)
}

func (s *studentService) ListStudentsBySemester(ctx context.Context, semester string) ([]dto.StudentResponseDTO, error) {
	students, err := s.studentRepo.FindBySemester(ctx, semester, repository.ProjectionMinified)
	if err != nil {
		log.Error().Err(err).Str("semester", semester).Msg("Failed to list students by semester")
		return nil, fmt.Errorf("fetching students by semester: %w", err)
	}
	return toStudentResponses(students)
}

func (s *studentService) ListStudentsByBranch(ctx context.Context, branch string) ([]dto.StudentResponseDTO, error) {
	students, err := s.studentRepo.FindByBranch(ctx, branch, repository.ProjectionMinified)
	if err != nil {
		log.Error().Err(err).Str("branch", branch).Msg("Failed to list students by branch")
		return nil, fmt.Errorf("fetching students by branch: %w", err)
	}
	return toStudentResponses(students)
}

func (s *studentService) ListStudentsByBranchAndSemester(ctx context.Context, branch, semester string) ([]dto.StudentResponseDTO, error) {
	students, err := s.studentRepo.FindByBranchAndSemester(ctx, branch, semester, repository.ProjectionMinified)
	if err != nil {
		log.Error().Err(err).Str("branch", branch).Str("semester", semester).Msg("Failed to list students by branch and semester")
		return nil, fmt.Errorf("fetching students by branch and semester: %w", err)
	}
	return toStudentResponses(students)
}

func (s *studentService) CountStudents(ctx context.Context) (int64, error) {
	count, err := s.studentRepo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count students")
		return 0, fmt.Errorf("counting students: %w", err)
	}
	return count, nil
}

func (s *studentService) CountStudentsByVerification(ctx context.Context, status string) (int64, error) {
	vs := model.VerificationStatus(status)
	if !vs.Valid() {
		return 0, ErrInvalidStatus
	}

	count, err := s.studentRepo.CountByVerification(ctx, vs)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("Failed to count students by verification")
		return 0, fmt.Errorf("counting students by verification: %w", err)
	}
	return count, nil
}

func (s *studentService) UpdateBioData(ctx context.Context, id string, req dto.BioDataDTO) (int64, error) {
	var bioData model.BioData
	if err := copier.Copy(&bioData, &req); err != nil {
		return 0, fmt.Errorf("copying biodata update request: %w", err)
	}
	return s.studentRepo.UpdateBioData(ctx, id, bioData)
}

func (s *studentService) UpdateVerification(ctx context.Context, id string, status string) (int64, error) {
	vs := model.VerificationStatus(status)
	if !vs.Valid() {
		return 0, ErrInvalidStatus
	}
	return s.studentRepo.UpdateVerification(ctx, id, vs)
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) (int64, error) {
	return s.studentRepo.Delete(ctx, id)
}

func toStudentResponse(student *model.Student) (*dto.StudentResponseDTO, error) {
	var resp dto.StudentResponseDTO
	if err := copier.Copy(&resp, student); err != nil {
		return nil, fmt.Errorf("preparing student response: %w", err)
	}
	return &resp, nil
}

func toStudentResponses(students []model.Student) ([]dto.StudentResponseDTO, error) {
	resps := make([]dto.StudentResponseDTO, 0, len(students))
	for i := range students {
		resp, err := toStudentResponse(&students[i])
		if err != nil {
			return nil, err
		}
		resps = append(resps, *resp)
	}
	return resps, nil
}
