package domain

import "time"

// Meal types for a meal-plan slot.
var MealTypes = []string{"breakfast", "lunch", "dinner"}

// ValidMealType reports whether m is one of the fixed meal types.
func ValidMealType(m string) bool {
	for _, v := range MealTypes {
		if v == m {
			return true
		}
	}
	return false
}

// MealPlan assigns a recipe to a (date, meal_type) slot for a user.
// Several entries may share a slot; Order sorts them within it.
type MealPlan struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"index;not null"`
	RecipeID  uint      `json:"recipe" gorm:"not null"`
	Recipe    *Recipe   `json:"recipe_details,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Date      Date      `json:"date" gorm:"index;not null"`
	MealType  string    `json:"meal_type" gorm:"size:10;not null"`
	Order     int       `json:"order" gorm:"default:0"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate applies the field rules for creating a meal plan entry.
func (m *MealPlan) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if m.RecipeID == 0 {
		errs.Add("recipe", "This field is required.")
	}
	if m.Date.IsZero() {
		errs.Add("date", "This field is required.")
	}
	if !ValidMealType(m.MealType) {
		errs.Add("meal_type", `"`+m.MealType+`" is not a valid choice.`)
	}
	if m.Order < 0 {
		errs.Add("order", "Ensure this value is greater than or equal to 0.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// WeekResponse is the payload of the week view endpoint.
type WeekResponse struct {
	StartDate Date       `json:"start_date"`
	EndDate   Date       `json:"end_date"`
	MealPlans []MealPlan `json:"meal_plans"`
}

// Bulk operation actions.
const (
	BulkActionClear = "clear"
	BulkActionCopy  = "copy"
)

// BulkOperationRequest asks for a range-wide mutation of meal plans.
type BulkOperationRequest struct {
	Action          string `json:"action"`
	StartDate       Date   `json:"start_date"`
	EndDate         Date   `json:"end_date"`
	TargetStartDate Date   `json:"target_start_date"`
}

// BulkOperationResult reports what a bulk operation did.
type BulkOperationResult struct {
	Action       string `json:"action"`
	DeletedCount int    `json:"deleted_count,omitempty"`
	CopiedCount  int    `json:"copied_count,omitempty"`
}
