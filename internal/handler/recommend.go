package handler

import (
	"net/http"

	"github.com/nikhil-r0/Green-Terrace/internal/domain"
	"github.com/nikhil-r0/Green-Terrace/internal/logger"
	"github.com/nikhil-r0/Green-Terrace/internal/recommend"
)

// RecommendCropsRequest is the JSON body of a crop recommendation request
type RecommendCropsRequest struct {
	TerraceSize   float64  `json:"terrace_size" validate:"gt=0"`
	Latitude      *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	SavingsWeight float64  `json:"savings_weight" validate:"gte=0,lte=1"`
	CarbonWeight  float64  `json:"weight_carbon_absorption" validate:"gte=0,lte=1"`
	Budget        float64  `json:"budget" validate:"gt=0"`
	Types         []string `json:"types" validate:"dive,category"`
}

func (r RecommendCropsRequest) toDomain() domain.RecommendRequest {
	return domain.RecommendRequest{
		TerraceSize:      r.TerraceSize,
		Latitude:         *r.Latitude,
		Longitude:        *r.Longitude,
		WeightSavings:    r.SavingsWeight,
		WeightCarbon:     r.CarbonWeight,
		Budget:           r.Budget,
		SelectedCategory: r.Types,
	}
}

// RecommendHandler serves crop recommendations
type RecommendHandler struct {
	service recommend.Service
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(service recommend.Service) *RecommendHandler {
	return &RecommendHandler{service: service}
}

// HandleRecommendCrops recommends how many of each plant to grow
// @Summary Recommend crops
// @Description Allocates terrace slots and budget across the selected plant categories
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body RecommendCropsRequest true "Terrace, location, weights, budget and categories"
// @Success 200 {object} domain.RecommendationResult
// @Failure 400 {object} domain.RecommendationResult
// @Failure 503 {object} domain.RecommendationResult
// @Failure 500 {object} domain.RecommendationResult
// @Router /api/v1/recommend_crops [post]
func (h *RecommendHandler) HandleRecommendCrops(w http.ResponseWriter, r *http.Request) {
	var req RecommendCropsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Recommend crops"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())
	log.Debug("Request details",
		"terrace_size", req.TerraceSize,
		"budget", req.Budget,
		"types", req.Types)

	result := h.service.Recommend(r.Context(), req.toDomain())
	respondJSON(w, statusForErrorKind(result.ErrorKind), result)
}

// EstimateItemRequest is one crop of a savings estimate
type EstimateItemRequest struct {
	Label    string `json:"label" validate:"required,max=100"`
	Quantity int    `json:"quantity" validate:"gt=0,lte=100000"`
}

// EstimateSavingsRequest is the JSON body of a savings estimate request
type EstimateSavingsRequest struct {
	Region    string                `json:"region" validate:"max=100"`
	Latitude  *float64              `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64              `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Items     []EstimateItemRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

func (r EstimateSavingsRequest) toDomain() domain.EstimateRequest {
	items := make([]domain.EstimateItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.EstimateItem{Label: item.Label, Quantity: item.Quantity}
	}
	return domain.EstimateRequest{
		Region:    r.Region,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Items:     items,
	}
}

// HandleEstimateSavings prices a fixed planting plan
// @Summary Estimate savings
// @Description Expected savings of growing the given quantities instead of buying them
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body EstimateSavingsRequest true "Crops and quantities"
// @Success 200 {object} domain.EstimateResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/estimate_savings [post]
func (h *RecommendHandler) HandleEstimateSavings(w http.ResponseWriter, r *http.Request) {
	var req EstimateSavingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Estimate savings"); err != nil {
		return
	}

	result, err := h.service.Estimate(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, "Estimate savings", ErrMsgEstimateFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CategoriesResponse lists the plant categories a client may select
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// HandleGetCategories lists the plant categories of the catalog
// @Summary List categories
// @Description Plant categories available for the types field
// @Tags recommend
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/categories [get]
func (h *RecommendHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get categories", ErrMsgGetCategoriesFailed, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}
