package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AngelosGi/magical-inventory-systemApi/internal/domain"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/item"
	"github.com/AngelosGi/magical-inventory-systemApi/internal/logger"
)

// HandleWelcome greets clients at the collection root
// @Summary Welcome message
// @Tags items
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /items/ [get]
func HandleWelcome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgWelcome})
	}
}

// HandleCreateItems creates one item or a list of items. The response mirrors
// the request shape: an object yields an object, an array yields an array.
// @Summary Create items
// @Description Accepts a single item or an array of items. Weight, durability and rarity are generated.
// @Tags items
// @Accept json
// @Produce json
// @Param request body domain.CreateItemRequest true "Item, or array of items"
// @Success 201 {object} domain.MagicItem
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/create [post]
func HandleCreateItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		body, isList, err := readBody(r)
		if err != nil {
			log.Warn("Failed to read create request", "error", err)
			if errors.Is(err, errEmptyBody) {
				respondError(w, http.StatusBadRequest, ErrMsgEmptyRequestBody)
				return
			}
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if !isList {
			var req domain.CreateItemRequest
			if err := json.Unmarshal(body, &req); err != nil {
				log.Warn("Failed to decode Create item request", "error", err)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}
			if err := validateRequest(w, &req); err != nil {
				return
			}

			created, err := svc.CreateItem(r.Context(), req)
			if err != nil {
				respondServiceError(w, r, ErrMsgCreateItemFailed, err)
				return
			}
			respondJSON(w, http.StatusCreated, created)
			return
		}

		var reqs []domain.CreateItemRequest
		if err := json.Unmarshal(body, &reqs); err != nil {
			log.Warn("Failed to decode Create items request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if fields := validateEach(reqs); fields != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: fields,
			})
			return
		}

		created, err := svc.CreateItems(r.Context(), reqs)
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateItemFailed, err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// validateEach returns field errors keyed "<index>.<field>", or nil.
func validateEach(reqs []domain.CreateItemRequest) map[string]string {
	var fields map[string]string
	for i := range reqs {
		err := GetValidator().ValidateStruct(&reqs[i])
		if err == nil {
			continue
		}
		if fields == nil {
			fields = make(map[string]string)
		}
		for k, v := range FormatValidationError(err) {
			fields[fmt.Sprintf("%d.%s", i, k)] = v
		}
	}
	return fields
}

// HandleGetAllItems lists every item
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} domain.MagicItem
// @Failure 500 {object} ErrorResponse
// @Router /items/all [get]
func HandleGetAllItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAllItems(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListItemsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem returns one item
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} domain.MagicItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [get]
func HandleGetItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, ParamID)
		if !ok {
			return
		}

		it, err := svc.GetItemByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, it)
	}
}

// HandleUpdateItem applies a partial update
// @Summary Update item
// @Description Only supplied fields change. Null and omitted fields are both left untouched.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body domain.UpdateItemRequest true "Fields to change"
// @Success 200 {object} domain.MagicItem
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/update_item/{id} [put]
func HandleUpdateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, ParamID)
		if !ok {
			return
		}

		var req domain.UpdateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
			return
		}

		it, err := svc.UpdateItem(r.Context(), id, req)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, it)
	}
}

// HandleAdjustStock moves stock in the given direction by the quantity query parameter
// @Summary Adjust stock
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Param quantity query int true "Positive amount"
// @Success 200 {object} domain.MagicItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id}/increase_stock [post]
// @Router /items/{id}/decrease_stock [post]
func HandleAdjustStock(svc item.Service, dir domain.StockDirection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, ParamID)
		if !ok {
			return
		}
		quantity, ok := GetIntQueryParam(r, w, ParamQuantity)
		if !ok {
			return
		}
		if quantity <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidQuantity)
			return
		}

		it, err := svc.AdjustStock(r.Context(), id, quantity, dir)
		if err != nil {
			respondServiceError(w, r, ErrMsgAdjustStockFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, it)
	}
}

// HandleDeleteItem removes an item and echoes it back
// @Summary Delete item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/delete/{id} [delete]
func HandleDeleteItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, ParamID)
		if !ok {
			return
		}

		it, err := svc.DeleteItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgDeleteItemFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemDeleted, Data: it})
	}
}

// HandleSearchItems filters items by query parameters
// @Summary Search items
// @Description String filters match exactly. Range bounds are inclusive. All filters are combined.
// @Tags items
// @Produce json
// @Param name query string false "Exact name"
// @Param category query string false "Exact category"
// @Param type query string false "Exact type"
// @Param min_level query int false "Minimum level"
// @Param max_level query int false "Maximum level"
// @Param min_value query int false "Minimum value"
// @Param max_value query int false "Maximum value"
// @Param min_stock query int false "Minimum stock"
// @Param max_stock query int false "Maximum stock"
// @Success 200 {array} domain.MagicItem
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/search [get]
func HandleSearchItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := parseSearchCriteria(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.SearchItems(r.Context(), criteria)
		if err != nil {
			respondServiceError(w, r, ErrMsgSearchItemsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

func parseSearchCriteria(r *http.Request) (domain.SearchCriteria, error) {
	criteria := domain.SearchCriteria{
		Name:     optionalStringQuery(r, QueryName),
		Category: optionalStringQuery(r, QueryCategory),
		Type:     optionalStringQuery(r, QueryType),
	}

	bounds := []struct {
		param string
		dst   **int
	}{
		{QueryMinLevel, &criteria.MinLevel},
		{QueryMaxLevel, &criteria.MaxLevel},
		{QueryMinValue, &criteria.MinValue},
		{QueryMaxValue, &criteria.MaxValue},
		{QueryMinStock, &criteria.MinStock},
		{QueryMaxStock, &criteria.MaxStock},
	}
	for _, b := range bounds {
		v, err := optionalIntQuery(r, b.param)
		if err != nil {
			return domain.SearchCriteria{}, err
		}
		*b.dst = v
	}

	return criteria, nil
}

// HandleGetStatistics reports inventory totals and extremes
// @Summary Inventory statistics
// @Tags items
// @Produce json
// @Success 200 {object} domain.InventoryStatistics
// @Failure 500 {object} ErrorResponse
// @Router /items/statistics [get]
func HandleGetStatistics(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetInventoryStatistics(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStatisticsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}
