package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bpohire/portal/internal/domain"
)

func TestFilterSetQueryOmitsUnsetFields(t *testing.T) {
	voice := true
	f := domain.FilterSet{
		City:      "Mumbai",
		JobType:   domain.JobTypeFullTime,
		IsVoice:   &voice,
		MinSalary: 20000,
	}

	q := f.Query()
	assert.Equal(t, "Mumbai", q.Get("city"))
	assert.Equal(t, "FULL_TIME", q.Get("jobType"))
	assert.Equal(t, "true", q.Get("isVoice"))
	assert.Equal(t, "20000", q.Get("minSalary"))
	assert.False(t, q.Has("title"))
	assert.False(t, q.Has("shift"))
	assert.False(t, q.Has("maxSalary"))
}

func TestFilterSetZeroValueIsEmptyQuery(t *testing.T) {
	f := domain.FilterSet{}
	assert.True(t, f.IsZero())
	assert.Empty(t, f.Query())
}

func TestFilterSetValid(t *testing.T) {
	assert.True(t, domain.FilterSet{}.Valid())
	assert.True(t, domain.FilterSet{MinSalary: 10, MaxSalary: 20}.Valid())
	assert.False(t, domain.FilterSet{MinSalary: 30, MaxSalary: 20}.Valid())
	assert.False(t, domain.FilterSet{JobType: "WEEKEND_ONLY"}.Valid())
	assert.False(t, domain.FilterSet{Shift: "GRAVEYARD"}.Valid())
}

func TestRoleAndKindValidity(t *testing.T) {
	assert.True(t, domain.RoleAdmin.Valid())
	assert.False(t, domain.Role("SUPERUSER").Valid())

	assert.Equal(t, domain.RoleEmployer, domain.AccountKindEmployer.Role())
	assert.Equal(t, domain.RoleCandidate, domain.AccountKindCandidate.Role())
	assert.False(t, domain.AccountKind("admin").Valid())
}
