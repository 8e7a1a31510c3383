package service

import (
	"context"
	"testing"

	"github.com/geekofia/quizdesk/internal/dto"
	"github.com/geekofia/quizdesk/internal/model"
	"github.com/geekofia/quizdesk/internal/repository"
	"github.com/geekofia/quizdesk/internal/repository/inmem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBioData(regdNo string) dto.BioDataDTO {
	return dto.BioDataDTO{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		FatherName: "M Rao",
		Branch:     "CSE",
		Semester:   "3",
		RegdNo:     regdNo,
		Gender:     "female",
		DOB:        "2003-06-14",
		Mob:        "9876543210",
	}
}

func TestRegisterStudentRoundTrip(t *testing.T) {
	repo := inmem.NewStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: newBioData("21cse001")})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	student, err := svc.GetStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", student.BioData.Name)
	assert.Equal(t, "21CSE001", student.BioData.RegdNo, "registration number is uppercased on insert")
	assert.Equal(t, string(model.VerificationPending), student.Verification)
}

func TestRegisterStudentDuplicateRegdNo(t *testing.T) {
	repo := inmem.NewStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	_, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: newBioData("21CSE001")})
	require.NoError(t, err)

	// Case differs; lookup is case-normalized so this is still a collision.
	_, err = svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: newBioData("21cse001")})
	assert.ErrorIs(t, err, ErrDuplicateRegdNo)

	count, err := svc.CountStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateBioDataResetsVerification(t *testing.T) {
	repo := inmem.NewStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: newBioData("21CSE002")})
	require.NoError(t, err)

	modified, err := svc.UpdateVerification(ctx, created.ID, "verified")
	require.NoError(t, err)
	require.Equal(t, int64(1), modified)

	bd := newBioData("21CSE002")
	bd.Name = "Asha R"
	modified, err = svc.UpdateBioData(ctx, created.ID, bd)
	require.NoError(t, err)
	require.Equal(t, int64(1), modified)

	student, err := svc.GetStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha R", student.BioData.Name)
	assert.Equal(t, string(model.VerificationPending), student.Verification,
		"any biodata edit must send the student back to pending")
}

func TestUpdateVerificationRejectsUnknownStatus(t *testing.T) {
	repo := inmem.NewStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: newBioData("21CSE003")})
	require.NoError(t, err)

	_, err = svc.UpdateVerification(ctx, created.ID, "approved")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	student, err := svc.GetStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.VerificationPending), student.Verification)
}

func TestUpdateVerificationUnknownStudent(t *testing.T) {
	svc := NewStudentService(inmem.NewStudentRepository())

	modified, err := svc.UpdateVerification(context.Background(), "64a1f0c2e1b2c3d4e5f60718", "verified")
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestDeleteStudent(t *testing.T) {
	repo := inmem.NewStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	created, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: newBioData("21CSE004")})
	require.NoError(t, err)

	deleted, err := svc.DeleteStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Deleting again is a zero-count result, never an error.
	deleted, err = svc.DeleteStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	_, err = svc.GetStudent(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListStudentsByVerificationMinified(t *testing.T) {
	repo := inmem.NewStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	first, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: newBioData("21CSE005")})
	require.NoError(t, err)
	bd := newBioData("21ECE001")
	bd.Branch = "ECE"
	_, err = svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: bd})
	require.NoError(t, err)

	_, err = svc.UpdateVerification(ctx, first.ID, "verified")
	require.NoError(t, err)

	verified, err := svc.ListStudentsByVerification(ctx, "verified")
	require.NoError(t, err)
	require.Len(t, verified, 1)
	assert.Equal(t, "21CSE005", verified[0].BioData.RegdNo)
	assert.Empty(t, verified[0].BioData.Gender, "minified listing drops personal detail fields")

	_, err = svc.ListStudentsByVerification(ctx, "bogus")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListStudentsByBranchExactMatch(t *testing.T) {
	repo := inmem.NewStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	bd := newBioData("21CSE009")
	bd.Branch = "cse"
	_, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: bd})
	require.NoError(t, err)

	// Branch is stored as submitted; filters match it exactly.
	students, err := svc.ListStudentsByBranch(ctx, "cse")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "cse", students[0].BioData.Branch)

	students, err = svc.ListStudentsByBranch(ctx, "CSE")
	require.NoError(t, err)
	assert.Empty(t, students)

	students, err = svc.ListStudentsByBranchAndSemester(ctx, "cse", "3")
	require.NoError(t, err)
	require.Len(t, students, 1)
}

func TestCountStudentsByVerification(t *testing.T) {
	repo := inmem.NewStudentRepository()
	svc := NewStudentService(repo)
	ctx := context.Background()

	for _, regd := range []string{"21CSE006", "21CSE007", "21CSE008"} {
		_, err := svc.RegisterStudent(ctx, dto.StudentCreateDTO{BioData: newBioData(regd)})
		require.NoError(t, err)
	}

	count, err := svc.CountStudentsByVerification(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = svc.CountStudentsByVerification(ctx, "rejected")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
