package swipe

import (
	"slices"
	"strings"

	"food-swipe-api/models"

	"github.com/pkg/errors"
)

// validActions is the authoritative list of swipe gestures
var validActions = []models.SwipeAction{
	models.SwipeLike,
	models.SwipeDislike,
}

var actionSet = func() map[models.SwipeAction]bool {
	m := make(map[models.SwipeAction]bool, len(validActions))
	for _, a := range validActions {
		m[a] = true
	}
	return m
}()

// CheckAction reports whether action is a recordable swipe gesture
func CheckAction(action models.SwipeAction) error {
	if actionSet[action] {
		return nil
	}
	return errors.Errorf("invalid swipe action '%s', must be one of: %s", action, describeActions())
}

func describeActions() string {
	names := make([]string, 0, len(validActions))
	for _, a := range validActions {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

// ApplyToPreferences folds a swiped order into the user's preference sets.
// Only like-swipes count; the category and cuisine are added once each.
func ApplyToPreferences(prefs models.Preferences, action models.SwipeAction, order models.Order) (models.Preferences, bool) {
	if action != models.SwipeLike {
		return prefs, false
	}
	changed := false
	if !slices.Contains(prefs.LikedCategories, order.Category) {
		prefs.LikedCategories = append(prefs.LikedCategories, order.Category)
		changed = true
	}
	if !slices.Contains(prefs.CuisineTypes, order.CuisineType) {
		prefs.CuisineTypes = append(prefs.CuisineTypes, order.CuisineType)
		changed = true
	}
	return prefs, changed
}
