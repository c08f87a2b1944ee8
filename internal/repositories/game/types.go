package game

import (
	"time"

	"github.com/thkos/tms/internal/models"
)

type SaveGameInput struct {
	Record *models.GameInstance
}

type GetGameInstancesInput struct {
}

type GetGameInstancesOutput struct {
	Records []*models.GameInstance
}

type GetDistinctCategoriesInput struct {
}

type GetDistinctCategoriesOutput struct {
	Categories []string
}

type GetDistinctInstancesInput struct {
}

type GetDistinctInstancesOutput struct {
	Instances []string
}

// CategoryInstance is one (category, instance) pair known to the store
type CategoryInstance struct {
	CategoryName string
	InstanceName string
}

type GetCategoryInstanceCombinationsInput struct {
}

type GetCategoryInstanceCombinationsOutput struct {
	Combinations []CategoryInstance
}

type DeleteGameInput struct {
	CategoryName string
	InstanceName string
}

type DeleteGameByIDInput struct {
	ID int64
}

// FetchDataInput filters a ranged fetch. Empty strings mean no filter.
type FetchDataInput struct {
	CategoryName string
	InstanceName string
}

type FetchDataOutput struct {
	Records []*models.GameInstance
}

type FetchCustomDataInput struct {
	CategoryName string
	InstanceName string
	StartDate    time.Time
	EndDate      time.Time
}
