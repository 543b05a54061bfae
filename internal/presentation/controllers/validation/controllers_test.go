package validation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anuntech/decision-backend/internal/domain/models"
	domainValidation "github.com/anuntech/decision-backend/internal/domain/validation"
	presentationProtocols "github.com/anuntech/decision-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubValidator struct {
	result *models.Validation
	err    error
	calls  int
}

func (s *stubValidator) Validate(_ context.Context, decisionId primitive.ObjectID) (*models.Validation, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	result := *s.result
	result.DocId = decisionId
	return &result, nil
}

func (s *stubValidator) ValidationTypeId() int {
	return models.ValidationTypeAnotherMonthlyPayment
}

type memoryValidations struct {
	saved map[primitive.ObjectID]*models.Validation
	err   error
}

func newMemoryValidations() *memoryValidations {
	return &memoryValidations{saved: map[primitive.ObjectID]*models.Validation{}}
}

func (m *memoryValidations) Save(_ context.Context, validation *models.Validation) (*models.Validation, error) {
	if m.err != nil {
		return nil, m.err
	}
	saved := *validation
	saved.Id = primitive.NewObjectID()
	m.saved[validation.DocId] = &saved
	return &saved, nil
}

func (m *memoryValidations) Find(_ context.Context, typeId int, decisionId primitive.ObjectID) (*models.Validation, error) {
	if m.err != nil {
		return nil, m.err
	}
	validation, ok := m.saved[decisionId]
	if !ok || validation.TypeId != typeId {
		return nil, nil
	}
	return validation, nil
}

func request(method string, pathValues map[string]string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(method, "/", nil)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decode[T any](t *testing.T, resp *presentationProtocols.HttpResponse) T {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body T
	require.NoError(t, json.Unmarshal(data, &body))
	return body
}

func TestRunValidationController(t *testing.T) {
	description := "В ПС МСК найдено заявление 15.08.2023 042-005 042 Отдел выплат без решения"

	t.Run("stores and returns the result", func(t *testing.T) {
		store := newMemoryValidations()
		stub := &stubValidator{result: models.NewValidation(models.ValidationTypeAnotherMonthlyPayment, primitive.NilObjectID, models.ValidationResultError, &description)}
		decisionId := primitive.NewObjectID()

		resp := NewRunValidationController(stub, store).Handle(request(http.MethodPost, map[string]string{"decisionId": decisionId.Hex()}))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[models.Validation](t, resp)
		assert.Equal(t, decisionId, body.DocId)
		assert.Equal(t, models.ValidationResultError, body.Result)
		require.NotNil(t, body.ErrorDescription)
		assert.Equal(t, description, *body.ErrorDescription)
		assert.Contains(t, store.saved, decisionId)
	})

	t.Run("rejects malformed decision id", func(t *testing.T) {
		stub := &stubValidator{}

		resp := NewRunValidationController(stub, newMemoryValidations()).Handle(request(http.MethodPost, map[string]string{"decisionId": "not-an-id"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.NotEmpty(t, decode[presentationProtocols.ErrorResponse](t, resp).Error)
		assert.Zero(t, stub.calls)
	})

	t.Run("unknown decision", func(t *testing.T) {
		stub := &stubValidator{err: domainValidation.ErrDecisionNotFound}

		resp := NewRunValidationController(stub, newMemoryValidations()).Handle(request(http.MethodPost, map[string]string{"decisionId": primitive.NewObjectID().Hex()}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("storage failure", func(t *testing.T) {
		stub := &stubValidator{err: errors.New("mongo timeout")}

		resp := NewRunValidationController(stub, newMemoryValidations()).Handle(request(http.MethodPost, map[string]string{"decisionId": primitive.NewObjectID().Hex()}))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestGetValidationController(t *testing.T) {
	store := newMemoryValidations()
	decisionId := primitive.NewObjectID()
	_, err := store.Save(context.Background(), models.NewValidation(models.ValidationTypeAnotherMonthlyPayment, decisionId, models.ValidationResultSuccess, nil))
	require.NoError(t, err)
	controller := NewGetValidationController(store)

	t.Run("found", func(t *testing.T) {
		resp := controller.Handle(request(http.MethodGet, map[string]string{"decisionId": decisionId.Hex(), "typeId": "47"}))

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[models.Validation](t, resp)
		assert.Equal(t, models.ValidationResultSuccess, body.Result)
		assert.Nil(t, body.ErrorDescription)
	})

	t.Run("other validation type", func(t *testing.T) {
		resp := controller.Handle(request(http.MethodGet, map[string]string{"decisionId": decisionId.Hex(), "typeId": "12"}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid type id", func(t *testing.T) {
		resp := controller.Handle(request(http.MethodGet, map[string]string{"decisionId": decisionId.Hex(), "typeId": "abc"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non positive type id", func(t *testing.T) {
		resp := controller.Handle(request(http.MethodGet, map[string]string{"decisionId": decisionId.Hex(), "typeId": "0"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

type memoryReports struct {
	reports map[string][]byte
	saves   int
}

func (m *memoryReports) Save(_ context.Context, key string, report []byte, _ time.Duration) error {
	m.saves++
	m.reports[key] = report
	return nil
}

func (m *memoryReports) Find(_ context.Context, key string) ([]byte, error) {
	return m.reports[key], nil
}

type registryStub struct {
	decision    *models.Decision
	application *models.Application
	children    []models.Child
	lookups     int
}

type decisionStub struct{ *registryStub }

func (r decisionStub) Find(_ context.Context, _ primitive.ObjectID) (*models.Decision, error) {
	r.lookups++
	return r.decision, nil
}

type applicationStub struct{ *registryStub }

func (r applicationStub) Find(_ context.Context, _ primitive.ObjectID) (*models.Application, error) {
	return r.application, nil
}

type childrenStub struct{ *registryStub }

func (r childrenStub) Find(_ context.Context, _ primitive.ObjectID) ([]models.Child, error) {
	return r.children, nil
}

func TestGetValidationReportController(t *testing.T) {
	decisionId := primitive.NewObjectID()
	applicationId := primitive.NewObjectID()
	store := newMemoryValidations()
	_, err := store.Save(context.Background(), models.NewValidation(models.ValidationTypeAnotherMonthlyPayment, decisionId, models.ValidationResultSuccess, nil))
	require.NoError(t, err)

	reg := &registryStub{
		decision:    &models.Decision{Id: decisionId, ApplicationId: applicationId},
		application: &models.Application{Id: applicationId, IncomingNumber: "077-100", Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		children:    []models.Child{{LastName: "Смирнов", FirstName: "Артём"}},
	}
	reports := &memoryReports{reports: map[string][]byte{}}
	controller := NewGetValidationReportController(store, decisionStub{reg}, applicationStub{reg}, childrenStub{reg}, reports, time.Hour)
	pathValues := map[string]string{"decisionId": decisionId.Hex()}

	first := controller.Handle(request(http.MethodGet, pathValues))
	require.Equal(t, http.StatusOK, first.StatusCode)
	firstBody := decode[GetValidationReportResponse](t, first)
	assert.Contains(t, firstBody.FileName, decisionId.Hex())
	assert.NotEmpty(t, firstBody.Content)

	second := controller.Handle(request(http.MethodGet, pathValues))
	require.Equal(t, http.StatusOK, second.StatusCode)
	secondBody := decode[GetValidationReportResponse](t, second)
	assert.Equal(t, firstBody.Content, secondBody.Content)

	assert.Equal(t, 1, reports.saves)
	assert.Equal(t, 1, reg.lookups)
}

func TestGetValidationReportController_ValidationNotRunYet(t *testing.T) {
	reg := &registryStub{}
	controller := NewGetValidationReportController(newMemoryValidations(), decisionStub{reg}, applicationStub{reg}, childrenStub{reg}, &memoryReports{reports: map[string][]byte{}}, time.Hour)

	resp := controller.Handle(request(http.MethodGet, map[string]string{"decisionId": primitive.NewObjectID().Hex()}))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
