package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/auth"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/finance"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/slots"
	"github.com/SergeyBogomolovv/fulfillment-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	userHeader   = "X-User"
	reauthHeader = "X-Reauth-Token"
)

type OrderReader interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Drawers(ctx context.Context) ([]slots.Occupancy, error)
	ClientBalance(ctx context.Context, clientID string) (finance.Summary, error)
}

type StatusEngine interface {
	Create(ctx context.Context, user string, in entities.NewOrder) (entities.Order, error)
	Advance(ctx context.Context, id, user string, payload entities.AdvancePayload) (entities.Order, error)
	Revert(ctx context.Context, id, user, proof string) (entities.Order, error)
	Cancel(ctx context.Context, id, user, reason string) (entities.Order, error)
	Edit(ctx context.Context, id, user string, edit entities.OrderEdit) (entities.Order, error)
	Split(ctx context.Context, id, user string, req entities.SplitRequest) (entities.SplitResult, error)
	SuggestSlot(ctx context.Context, id string) (slots.Suggestion, error)
}

type TokenIssuer interface {
	IssueToken(ctx context.Context, username, password string) (auth.Token, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderReader
	engine   StatusEngine
	tokens   TokenIssuer
}

func NewHTTPHandler(logger *slog.Logger, orders OrderReader, engine StatusEngine, tokens TokenIssuer) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: utils.NewValidator(),
		orders:   orders,
		engine:   engine,
		tokens:   tokens,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetOrderByID)
			r.Patch("/", h.EditOrder)
			r.Post("/advance", h.AdvanceOrder)
			r.Post("/revert", h.RevertOrder)
			r.Post("/cancel", h.CancelOrder)
			r.Post("/split", h.SplitOrder)
			r.Get("/slot-suggestion", h.SuggestSlot)
		})
	})

	r.Get("/drawers", h.ListDrawers)
	r.Get("/clients/{client_id}/balance", h.ClientBalance)
	r.Post("/auth/reauth", h.Reauth)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	order, err := h.orders.GetOrderByID(ctx, id)
	if err != nil {
		h.writeError(w, r, "get order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает список заказов с фильтрами.
// @Summary      Список заказов
// @Tags         orders
// @Param        status       query     []string  false  "Статусы"  collectionFormat(csv)
// @Param        client_id    query     string    false  "Клиент"
// @Param        shipment_id  query     string    false  "Партия отправки"
// @Param        q            query     string    false  "Поиск по номерам и названию"
// @Param        limit        query     int       false  "Лимит"
// @Param        offset       query     int       false  "Смещение"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entities.OrderFilter{
		ClientID:   q.Get("client_id"),
		ShipmentID: q.Get("shipment_id"),
		Search:     q.Get("q"),
	}

	if raw := q.Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			status := entities.Status(strings.ToUpper(strings.TrimSpace(s)))
			if !status.Valid() {
				h.writeError(w, r, "list orders", entities.NewValidationError("status"))
				return
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	var err error
	if filter.Limit, err = queryInt(q.Get("limit")); err != nil {
		h.writeError(w, r, "list orders", entities.NewValidationError("limit"))
		return
	}
	if filter.Offset, err = queryInt(q.Get("offset")); err != nil {
		h.writeError(w, r, "list orders", entities.NewValidationError("offset"))
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, "list orders", err)
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// CreateOrder регистрирует новый заказ.
// @Summary      Создать заказ
// @Tags         orders
// @Param        X-User  header    string              false  "Оператор"
// @Param        order   body      entities.NewOrder   true   "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      503  {object}  utils.ErrorResponse "Не удалось сохранить"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in entities.NewOrder
	if err := utils.DecodeBody(r, &in); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.engine.Create(r.Context(), actingUser(r), in)
	if err != nil {
		h.writeError(w, r, "create order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// EditOrder меняет поля заказа, кроме статуса.
// @Summary      Редактировать заказ
// @Tags         orders
// @Param        id      path      string              true   "Идентификатор заказа"
// @Param        X-User  header    string              false  "Оператор"
// @Param        edit    body      entities.OrderEdit  true   "Изменения"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{id} [patch]
func (h *HTTPHandler) EditOrder(w http.ResponseWriter, r *http.Request) {
	var edit entities.OrderEdit
	if err := utils.DecodeBody(r, &edit); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.engine.Edit(r.Context(), chi.URLParam(r, "id"), actingUser(r), edit)
	if err != nil {
		h.writeError(w, r, "edit order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// AdvanceOrder переводит заказ в следующий статус.
// @Summary      Следующий статус
// @Description  Поле from должно совпадать с текущим статусом заказа и определяет обязательные поля
// @Tags         status
// @Param        id       path      string          true   "Идентификатор заказа"
// @Param        X-User   header    string          false  "Оператор"
// @Param        payload  body      AdvanceRequest  true   "Данные для перехода"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Переход недопустим"
// @Failure      503  {object}  utils.ErrorResponse
// @Router       /orders/{id}/advance [post]
func (h *HTTPHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, utils.MaxBodySize))
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	payload, err := DecodeAdvance(body)
	if err != nil {
		var ve *entities.ValidationError
		if errors.As(err, &ve) {
			h.writeError(w, r, "advance order", err)
			return
		}
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.engine.Advance(r.Context(), chi.URLParam(r, "id"), actingUser(r), payload)
	if err != nil {
		h.writeError(w, r, "advance order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// RevertOrder возвращает заказ в предыдущий статус.
// @Summary      Предыдущий статус
// @Description  Требует токен повторной аутентификации, выданный тому же оператору
// @Tags         status
// @Param        id              path      string  true   "Идентификатор заказа"
// @Param        X-User          header    string  true   "Оператор"
// @Param        X-Reauth-Token  header    string  true   "Токен из /auth/reauth"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{id}/revert [post]
func (h *HTTPHandler) RevertOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.engine.Revert(r.Context(), chi.URLParam(r, "id"), actingUser(r), r.Header.Get(reauthHeader))
	if err != nil {
		h.writeError(w, r, "revert order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Tags         status
// @Param        id      path      string         true   "Идентификатор заказа"
// @Param        X-User  header    string         false  "Оператор"
// @Param        body    body      CancelRequest  true   "Причина"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.engine.Cancel(r.Context(), chi.URLParam(r, "id"), actingUser(r), req.Reason)
	if err != nil {
		h.writeError(w, r, "cancel order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SplitOrder выделяет часть количества в отдельный заказ.
// @Summary      Разделить заказ
// @Tags         status
// @Param        id      path      string                 true   "Идентификатор заказа"
// @Param        X-User  header    string                 false  "Оператор"
// @Param        body    body      entities.SplitRequest  true   "Параметры разделения"
// @Success      201  {object}  SplitResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      503  {object}  utils.ErrorResponse
// @Router       /orders/{id}/split [post]
func (h *HTTPHandler) SplitOrder(w http.ResponseWriter, r *http.Request) {
	var req entities.SplitRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.engine.Split(r.Context(), chi.URLParam(r, "id"), actingUser(r), req)
	if err != nil {
		h.writeError(w, r, "split order", err)
		return
	}

	utils.WriteJSON(w, SplitResponse{
		Original: OrderEntityToJSON(res.Original),
		Split:    OrderEntityToJSON(res.Split),
	}, http.StatusCreated)
}

// SuggestSlot рекомендует ячейку хранения для заказа в офисе.
// @Summary      Рекомендация ячейки
// @Tags         storage
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  SlotSuggestion
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Заказ не в офисе"
// @Router       /orders/{id}/slot-suggestion [get]
func (h *HTTPHandler) SuggestSlot(w http.ResponseWriter, r *http.Request) {
	s, err := h.engine.SuggestSlot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "suggest slot", err)
		return
	}

	utils.WriteJSON(w, SuggestionEntityToJSON(s), http.StatusOK)
}

// ListDrawers возвращает заполненность ящиков.
// @Summary      Ящики хранения
// @Tags         storage
// @Success      200  {array}   Drawer
// @Router       /drawers [get]
func (h *HTTPHandler) ListDrawers(w http.ResponseWriter, r *http.Request) {
	occ, err := h.orders.Drawers(r.Context())
	if err != nil {
		h.writeError(w, r, "list drawers", err)
		return
	}

	utils.WriteJSON(w, OccupancyEntityToJSON(occ), http.StatusOK)
}

// ClientBalance возвращает сводку по оплатам клиента.
// @Summary      Баланс клиента
// @Tags         billing
// @Param        client_id  path      string  true  "Клиент"
// @Success      200  {object}  Balance
// @Router       /clients/{client_id}/balance [get]
func (h *HTTPHandler) ClientBalance(w http.ResponseWriter, r *http.Request) {
	summary, err := h.orders.ClientBalance(r.Context(), chi.URLParam(r, "client_id"))
	if err != nil {
		h.writeError(w, r, "client balance", err)
		return
	}

	utils.WriteJSON(w, BalanceEntityToJSON(summary), http.StatusOK)
}

// Reauth выдает токен повторной аутентификации.
// @Summary      Повторная аутентификация
// @Tags         auth
// @Param        body  body      ReauthRequest  true  "Учетные данные"
// @Success      200  {object}  ReauthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /auth/reauth [post]
func (h *HTTPHandler) Reauth(w http.ResponseWriter, r *http.Request) {
	var req ReauthRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, err := h.tokens.IssueToken(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, "reauth", err)
		return
	}

	utils.WriteJSON(w, ReauthResponse{Token: token.Value, ExpiresAt: token.ExpiresAt}, http.StatusOK)
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		validationErr  *entities.ValidationError
		transitionErr  *entities.IllegalTransitionError
		authErr        *entities.AuthenticationError
		persistenceErr *entities.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.WriteFieldErrors(w, validationErr.Error(), validationErr.Fields)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.As(err, &transitionErr):
		utils.WriteError(w, transitionErr.Error(), http.StatusConflict)
	case errors.As(err, &authErr):
		utils.WriteError(w, "re-authentication required", http.StatusUnauthorized)
	case errors.As(err, &persistenceErr):
		h.logger.ErrorContext(r.Context(), "failed to "+op, slog.Any("error", err))
		utils.WriteError(w, "failed to save changes, try again", http.StatusServiceUnavailable)
	default:
		h.logger.ErrorContext(r.Context(), "failed to "+op, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func actingUser(r *http.Request) string {
	if user := strings.TrimSpace(r.Header.Get(userHeader)); user != "" {
		return user
	}
	return entities.SystemUser
}

func queryInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid number")
	}
	return n, nil
}
