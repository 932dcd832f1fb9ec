package service

import (
	"strconv"

	"github.com/yc6chen/Claude-WebApp-Test-sub002/internal/domain"
	"github.com/yc6chen/Claude-WebApp-Test-sub002/pkg/logger"
)

// MealPlanService handles per-user meal-plan entries and week-level
// operations.
type MealPlanService struct {
	plans   domain.MealPlanRepository
	recipes domain.RecipeRepository
	log     *logger.Logger
}

// NewMealPlanService creates a new MealPlanService.
func NewMealPlanService(plans domain.MealPlanRepository, recipes domain.RecipeRepository, log *logger.Logger) *MealPlanService {
	return &MealPlanService{plans: plans, recipes: recipes, log: log}
}

// List returns the caller's entries, optionally restricted to [start, end].
func (s *MealPlanService) List(userID uint, start, end *domain.Date) ([]domain.MealPlan, error) {
	return s.plans.ListByUser(userID, start, end)
}

// Get returns one of the caller's entries.
func (s *MealPlanService) Get(id, userID uint) (*domain.MealPlan, error) {
	plan, err := s.plans.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return plan, nil
}

// Create validates and stores a new entry for the caller. The referenced
// recipe must exist and be visible to the caller.
func (s *MealPlanService) Create(plan *domain.MealPlan, userID uint) (*domain.MealPlan, error) {
	plan.ID = 0
	plan.UserID = userID
	if errs := plan.Validate(); errs != nil {
		return nil, errs
	}
	recipe, err := s.recipes.GetByID(plan.RecipeID)
	if err != nil || !recipe.VisibleTo(&userID) {
		errs := domain.ValidationErrors{}
		errs.Add("recipe", "Invalid pk \""+strconv.FormatUint(uint64(plan.RecipeID), 10)+"\" - object does not exist.")
		return nil, errs
	}
	if err := s.plans.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update validates and stores changes to one of the caller's entries.
func (s *MealPlanService) Update(id uint, updated *domain.MealPlan, userID uint) (*domain.MealPlan, error) {
	existing, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	existing.RecipeID = updated.RecipeID
	existing.Date = updated.Date
	existing.MealType = updated.MealType
	existing.Order = updated.Order
	existing.Notes = updated.Notes
	if errs := existing.Validate(); errs != nil {
		return nil, errs
	}
	existing.Recipe = nil
	if err := s.plans.Update(existing); err != nil {
		return nil, err
	}
	return s.plans.GetByID(id)
}

// Delete removes one of the caller's entries.
func (s *MealPlanService) Delete(id, userID uint) error {
	if _, err := s.Get(id, userID); err != nil {
		return err
	}
	return s.plans.Delete(id)
}

// Week returns the entries for the seven days starting at start.
func (s *MealPlanService) Week(userID uint, start domain.Date) (*domain.WeekResponse, error) {
	end := start.AddDays(6)
	plans, err := s.plans.ListByUser(userID, &start, &end)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []domain.MealPlan{}
	}
	return &domain.WeekResponse{StartDate: start, EndDate: end, MealPlans: plans}, nil
}

// Bulk performs a range-wide clear or copy of the caller's entries.
func (s *MealPlanService) Bulk(userID uint, req domain.BulkOperationRequest) (*domain.BulkOperationResult, error) {
	errs := domain.ValidationErrors{}
	if req.StartDate.IsZero() {
		errs.Add("start_date", "This field is required.")
	}
	if req.EndDate.IsZero() {
		errs.Add("end_date", "This field is required.")
	}

	switch req.Action {
	case domain.BulkActionClear:
		if len(errs) > 0 {
			return nil, errs
		}
		deleted, err := s.plans.DeleteRange(userID, req.StartDate, req.EndDate)
		if err != nil {
			return nil, err
		}
		s.log.Infof("cleared %d meal plans for user %d", deleted, userID)
		return &domain.BulkOperationResult{Action: req.Action, DeletedCount: int(deleted)}, nil

	case domain.BulkActionCopy:
		if req.TargetStartDate.IsZero() {
			errs.Add("target_start_date", "This field is required.")
		}
		if len(errs) > 0 {
			return nil, errs
		}
		source, err := s.plans.ListByUser(userID, &req.StartDate, &req.EndDate)
		if err != nil {
			return nil, err
		}
		copies := make([]domain.MealPlan, 0, len(source))
		for _, plan := range source {
			offset := daysBetween(req.StartDate, plan.Date)
			copies = append(copies, domain.MealPlan{
				UserID:   userID,
				RecipeID: plan.RecipeID,
				Date:     req.TargetStartDate.AddDays(offset),
				MealType: plan.MealType,
				Order:    plan.Order,
				Notes:    plan.Notes,
			})
		}
		if err := s.plans.CreateBatch(copies); err != nil {
			return nil, err
		}
		return &domain.BulkOperationResult{Action: req.Action, CopiedCount: len(copies)}, nil

	default:
		errs.Add("action", `"`+req.Action+`" is not a valid choice.`)
		return nil, errs
	}
}

// daysBetween counts whole days from a to b.
func daysBetween(a, b domain.Date) int {
	return int(b.Time.Sub(a.Time).Hours() / 24)
}
