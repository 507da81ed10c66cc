package doctor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	doctors map[uuid.UUID]*Doctor
}

func newMockRepo() *mockRepo {
	return &mockRepo{doctors: make(map[uuid.UUID]*Doctor)}
}

func (m *mockRepo) Create(_ context.Context, doc *Doctor) error {
	for _, existing := range m.doctors {
		if existing.HospitalID == doc.HospitalID && existing.NationalCode == doc.NationalCode {
			return ErrDuplicateNationalCode
		}
	}
	doc.ID = uuid.New()
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()
	m.doctors[doc.ID] = doc
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, hospitalID, id uuid.UUID) (*Doctor, error) {
	doc, ok := m.doctors[id]
	if !ok || doc.HospitalID != hospitalID {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (m *mockRepo) Update(_ context.Context, doc *Doctor) error {
	existing, ok := m.doctors[doc.ID]
	if !ok || existing.HospitalID != doc.HospitalID {
		return ErrNotFound
	}
	for _, other := range m.doctors {
		if other.ID != doc.ID && other.HospitalID == doc.HospitalID && other.NationalCode == doc.NationalCode {
			return ErrDuplicateNationalCode
		}
	}
	m.doctors[doc.ID] = doc
	return nil
}

func (m *mockRepo) Delete(_ context.Context, hospitalID, id uuid.UUID) error {
	doc, ok := m.doctors[id]
	if ok && doc.HospitalID == hospitalID {
		delete(m.doctors, id)
	}
	return nil
}

func (m *mockRepo) ListByHospital(_ context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]*Doctor, int, error) {
	var result []*Doctor
	for _, doc := range m.doctors {
		if doc.HospitalID != hospitalID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(doc.FullName), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(doc.Specialty), strings.ToLower(search)) {
			continue
		}
		result = append(result, doc)
	}
	return result, len(result), nil
}

func TestCreate(t *testing.T) {
	svc := NewService(newMockRepo())
	hospital := uuid.New()

	doc := &Doctor{HospitalID: hospital, FullName: "د. أحمد", Specialty: "Cardiology", NationalCode: "0101"}
	if err := svc.Create(context.Background(), doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID == uuid.Nil {
		t.Error("expected an assigned ID")
	}
}

func TestCreate_DuplicateNationalCode(t *testing.T) {
	svc := NewService(newMockRepo())
	hospital := uuid.New()

	first := &Doctor{HospitalID: hospital, FullName: "د. أحمد", NationalCode: "0101"}
	if err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := &Doctor{HospitalID: hospital, FullName: "د. سامر", NationalCode: "0101"}
	if err := svc.Create(context.Background(), dup); !errors.Is(err, ErrDuplicateNationalCode) {
		t.Errorf("expected ErrDuplicateNationalCode, got %v", err)
	}
}

func TestCreate_SameCodeDifferentHospitals(t *testing.T) {
	svc := NewService(newMockRepo())

	a := &Doctor{HospitalID: uuid.New(), FullName: "د. أحمد", NationalCode: "0101"}
	b := &Doctor{HospitalID: uuid.New(), FullName: "د. سامر", NationalCode: "0101"}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Create(context.Background(), b); err != nil {
		t.Errorf("national code should be scoped per hospital, got %v", err)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc := NewService(newMockRepo())
	hospital := uuid.New()

	if err := svc.Create(context.Background(), &Doctor{HospitalID: hospital, NationalCode: "0101"}); err == nil {
		t.Error("expected error for missing full name")
	}
	if err := svc.Create(context.Background(), &Doctor{HospitalID: hospital, FullName: "د. أحمد"}); err == nil {
		t.Error("expected error for missing national code")
	}
}

func TestList_ScopedToHospital(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	mine, theirs := uuid.New(), uuid.New()

	svc.Create(context.Background(), &Doctor{HospitalID: mine, FullName: "د. أحمد", NationalCode: "1"})
	svc.Create(context.Background(), &Doctor{HospitalID: theirs, FullName: "د. سامر", NationalCode: "2"})

	docs, total, err := svc.List(context.Background(), mine, "", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(docs) != 1 {
		t.Fatalf("expected 1 doctor, got total=%d len=%d", total, len(docs))
	}
	if docs[0].FullName != "د. أحمد" {
		t.Errorf("wrong doctor returned: %s", docs[0].FullName)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	svc := NewService(newMockRepo())
	hospital := uuid.New()

	doc := &Doctor{HospitalID: hospital, FullName: "د. أحمد", NationalCode: "0101"}
	svc.Create(context.Background(), doc)

	if err := svc.Delete(context.Background(), hospital, doc.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), hospital, doc.ID); err != nil {
		t.Errorf("second delete should succeed, got %v", err)
	}
}
