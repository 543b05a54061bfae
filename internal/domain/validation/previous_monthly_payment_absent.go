package validation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/domain/usecase"
	"github.com/anuntech/decision-backend/internal/utils"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EligibilityWindowYears bounds how far after the applicant's reference date
// another approved monthly payment application is still considered.
const EligibilityWindowYears = 5

var (
	ErrDecisionNotFound    = errors.New("decision not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrPortfolioNotFound   = errors.New("portfolio not found")
)

// PreviousMonthlyPaymentAbsentValidator fails a decision when the family already
// has a monthly payment application approved for the same children.
type PreviousMonthlyPaymentAbsentValidator struct {
	FindDecisionByIdRepository          usecase.FindDecisionByIdRepository
	FindStatedDecisionRepository        usecase.FindStatedDecisionByApplicationIdRepository
	FindApplicationByIdRepository       usecase.FindApplicationByIdRepository
	FindApplicationsRepository          usecase.FindApplicationsByOperationHistoryRepository
	FindPortfolioByIdRepository         usecase.FindPortfolioByIdRepository
	FindChildrenByApplicationRepository usecase.FindChildrenByApplicationIdRepository
	Calculator                          usecase.ChildDoubledCalculator
}

func NewPreviousMonthlyPaymentAbsentValidator(
	findDecisionById usecase.FindDecisionByIdRepository,
	findStatedDecision usecase.FindStatedDecisionByApplicationIdRepository,
	findApplicationById usecase.FindApplicationByIdRepository,
	findApplications usecase.FindApplicationsByOperationHistoryRepository,
	findPortfolioById usecase.FindPortfolioByIdRepository,
	findChildren usecase.FindChildrenByApplicationIdRepository,
	calculator usecase.ChildDoubledCalculator,
) *PreviousMonthlyPaymentAbsentValidator {
	return &PreviousMonthlyPaymentAbsentValidator{
		FindDecisionByIdRepository:          findDecisionById,
		FindStatedDecisionRepository:        findStatedDecision,
		FindApplicationByIdRepository:       findApplicationById,
		FindApplicationsRepository:          findApplications,
		FindPortfolioByIdRepository:         findPortfolioById,
		FindChildrenByApplicationRepository: findChildren,
		Calculator:                          calculator,
	}
}

// approvedApplication pairs a prior application with its children, loaded once per validation.
type approvedApplication struct {
	application models.Application
	children    []models.Child
}

// statedDecisions memoizes stated decision lookups for a single Validate call.
// Absent decisions are remembered too, so each application is read at most once per run.
type statedDecisions struct {
	repository usecase.FindStatedDecisionByApplicationIdRepository
	found      map[primitive.ObjectID]*models.Decision
}

func (s *statedDecisions) find(ctx context.Context, applicationId primitive.ObjectID) (*models.Decision, error) {
	if decision, ok := s.found[applicationId]; ok {
		return decision, nil
	}

	decision, err := s.repository.FindStated(ctx, applicationId)
	if err != nil {
		return nil, fmt.Errorf("find stated decision of application %s: %w", applicationId.Hex(), err)
	}
	s.found[applicationId] = decision

	return decision, nil
}

func (v *PreviousMonthlyPaymentAbsentValidator) ValidationTypeId() int {
	return models.ValidationTypeAnotherMonthlyPayment
}

func (v *PreviousMonthlyPaymentAbsentValidator) Validate(ctx context.Context, decisionId primitive.ObjectID) (*models.Validation, error) {
	decision, err := v.FindDecisionByIdRepository.Find(ctx, decisionId)
	if err != nil {
		return nil, fmt.Errorf("find decision %s: %w", decisionId.Hex(), err)
	}
	if decision == nil {
		return nil, ErrDecisionNotFound
	}

	application, err := v.FindApplicationByIdRepository.Find(ctx, decision.ApplicationId)
	if err != nil {
		return nil, fmt.Errorf("find application %s: %w", decision.ApplicationId.Hex(), err)
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}

	portfolio, err := v.FindPortfolioByIdRepository.Find(ctx, decision.PortfolioId)
	if err != nil {
		return nil, fmt.Errorf("find portfolio %s: %w", decision.PortfolioId.Hex(), err)
	}
	if portfolio == nil {
		return nil, ErrPortfolioNotFound
	}

	referenceDate := application.ReferenceDate()
	stated := &statedDecisions{
		repository: v.FindStatedDecisionRepository,
		found:      map[primitive.ObjectID]*models.Decision{},
	}

	windowed, err := v.findMonthlyPaymentApplications(ctx, portfolio.OperationHistoryId, referenceDate.AddDate(EligibilityWindowYears, 0, 0))
	if err != nil {
		return nil, err
	}

	approved, err := v.findPositiveApproved(ctx, stated, application.Id, windowed)
	if err != nil {
		return nil, err
	}

	applicantChildren, err := v.FindChildrenByApplicationRepository.Find(ctx, application.Id)
	if err != nil {
		return nil, fmt.Errorf("find children of application %s: %w", application.Id.Hex(), err)
	}

	for _, prior := range approved {
		if v.hasDoubledChild(applicantChildren, prior.children) {
			return v.fail(decisionId, doubledChildrenMessage(&prior.application)), nil
		}
	}

	if len(applicantChildren) > 0 && hasChildrenOutsideApproved(applicantChildren, approved) {
		return v.succeed(decisionId), nil
	}

	earlier, err := v.findMonthlyPaymentApplications(ctx, portfolio.OperationHistoryId, referenceDate.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	if len(earlier) == 0 {
		return v.succeed(decisionId), nil
	}

	decisions := make([]*models.Decision, len(earlier))
	for i := range earlier {
		if earlier[i].Id == application.Id {
			continue
		}

		decision, err := stated.find(ctx, earlier[i].Id)
		if err != nil {
			return nil, err
		}
		if decision == nil {
			return v.fail(decisionId, undecidedApplicationMessage(&earlier[i])), nil
		}
		decisions[i] = decision
	}

	for i := range earlier {
		if earlier[i].Id == application.Id || decisions[i].IsRefusal() {
			continue
		}

		children, err := v.FindChildrenByApplicationRepository.Find(ctx, earlier[i].Id)
		if err != nil {
			return nil, fmt.Errorf("find children of application %s: %w", earlier[i].Id.Hex(), err)
		}

		if v.hasDoubledChild(applicantChildren, children) {
			return v.fail(decisionId, doubledChildrenMessage(&earlier[i])), nil
		}
	}

	return v.succeed(decisionId), nil
}

func (v *PreviousMonthlyPaymentAbsentValidator) findMonthlyPaymentApplications(ctx context.Context, operationHistoryId primitive.ObjectID, maxDate time.Time) ([]models.Application, error) {
	applications, err := v.FindApplicationsRepository.Find(ctx, &usecase.FindApplicationsByOperationHistoryInputRepository{
		OperationHistoryId: operationHistoryId,
		MaxDate:            maxDate,
		DocumentType:       models.DocumentTypeMZRK,
		ExpenseDirection:   models.ExpenseDirectionMonthlyPaymentHelp,
	})
	if err != nil {
		return nil, fmt.Errorf("find monthly payment applications up to %s: %w", utils.FormatDate(maxDate), err)
	}

	return applications, nil
}

func (v *PreviousMonthlyPaymentAbsentValidator) findPositiveApproved(ctx context.Context, stated *statedDecisions, currentId primitive.ObjectID, applications []models.Application) ([]approvedApplication, error) {
	var approved []approvedApplication
	for _, app := range applications {
		if app.Id == currentId {
			continue
		}

		decision, err := stated.find(ctx, app.Id)
		if err != nil {
			return nil, err
		}
		if !decision.IsPositiveApproved() {
			continue
		}

		children, err := v.FindChildrenByApplicationRepository.Find(ctx, app.Id)
		if err != nil {
			return nil, fmt.Errorf("find children of application %s: %w", app.Id.Hex(), err)
		}

		approved = append(approved, approvedApplication{
			application: app,
			children:    children,
		})
	}

	return approved, nil
}

func (v *PreviousMonthlyPaymentAbsentValidator) hasDoubledChild(applicantChildren []models.Child, existing []models.Child) bool {
	for _, child := range applicantChildren {
		if !child.CountsInCalc() {
			continue
		}
		if v.Calculator.IsChildDoubled(child, existing) {
			return true
		}
	}

	return false
}

// hasChildrenOutsideApproved is true when some approved application either misses one
// of the applicant's children or lists it as not counted in its calculation.
func hasChildrenOutsideApproved(applicantChildren []models.Child, approved []approvedApplication) bool {
	for _, prior := range approved {
		for _, child := range applicantChildren {
			if !containsChild(prior.children, child) {
				return true
			}
		}

		for _, priorChild := range prior.children {
			if containsChild(applicantChildren, priorChild) && !priorChild.CountsInCalc() {
				return true
			}
		}
	}

	return false
}

func containsChild(children []models.Child, child models.Child) bool {
	for _, c := range children {
		if utils.IsSameChild(c, child) {
			return true
		}
	}
	return false
}

func (v *PreviousMonthlyPaymentAbsentValidator) succeed(decisionId primitive.ObjectID) *models.Validation {
	log.Debug().Str("decisionId", decisionId.Hex()).Msg("no previous monthly payment with the same children")
	return models.NewValidation(v.ValidationTypeId(), decisionId, models.ValidationResultSuccess, nil)
}

func (v *PreviousMonthlyPaymentAbsentValidator) fail(decisionId primitive.ObjectID, description string) *models.Validation {
	log.Info().Str("decisionId", decisionId.Hex()).Str("reason", description).Msg("previous monthly payment validation failed")
	return models.NewValidation(v.ValidationTypeId(), decisionId, models.ValidationResultError, &description)
}

func doubledChildrenMessage(app *models.Application) string {
	return fmt.Sprintf("В ПС МСК найдено заявление МЗРК %s, %s, %s с положительным решением с такими же детьми",
		utils.FormatDate(app.ReferenceDate()),
		app.IncomingNumber,
		app.OrgUnit.Code,
	)
}

func undecidedApplicationMessage(app *models.Application) string {
	return fmt.Sprintf("В ПС МСК найдено заявление %s %s %s без решения",
		utils.FormatDate(app.ReferenceDate()),
		app.IncomingNumber,
		app.OrgUnit.FormattedCodeName(),
	)
}
