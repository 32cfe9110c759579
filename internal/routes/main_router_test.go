// Файл: internal/routes/main_router_test.go
package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/repositories"
	"repair-flow/pkg/customvalidator"
	"repair-flow/pkg/utils"
)

type RouterTestSuite struct {
	suite.Suite
	Echo *echo.Echo
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

// SetupTest собирает приложение заново на памяти: каждый тест начинает
// с чистого сида, без Redis и прочей инфраструктуры.
func (suite *RouterTestSuite) SetupTest() {
	e := echo.New()

	v := validator.New()
	suite.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	store := repositories.NewMemoryBlobStore(0, 0)
	InitRouter(e, store, zap.NewNop())

	suite.Echo = e
}

func (suite *RouterTestSuite) doJSON(method, path string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	var body bytes.Buffer
	if payload != nil {
		suite.Require().NoError(json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.Echo.ServeHTTP(rec, req)

	var env envelope
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), "ответ должен быть конвертом {status, message, body}")
	return rec, env
}

func (suite *RouterTestSuite) TestIntakeSubmitsOrder() {
	rec, env := suite.doJSON(http.MethodPost, "/intake", map[string]string{
		"name":  "Пётр Сидоров",
		"phone": "+7 901 555-66-77",
		"model": "Lenovo Legion",
		"issue": "Артефакты на экране",
	})
	suite.Equal(http.StatusCreated, rec.Code)
	suite.True(env.Status)

	var res dto.IntakeResponseDTO
	suite.Require().NoError(json.Unmarshal(env.Body, &res))
	suite.NotEmpty(res.OrderID)

	// Заказ виден в админке по номеру
	rec, env = suite.doJSON(http.MethodGet, "/api/orders/"+res.OrderID, nil)
	suite.Equal(http.StatusOK, rec.Code)

	var order dto.OrderDTO
	suite.Require().NoError(json.Unmarshal(env.Body, &order))
	suite.Equal("Заявка с сайта", order.Notes)
	suite.Equal("received", order.Status)
	suite.Equal("Пётр Сидоров", order.ClientName)
}

func (suite *RouterTestSuite) TestIntakeValidation() {
	rec, env := suite.doJSON(http.MethodPost, "/intake", map[string]string{
		"name":  "Пётр Сидоров",
		"phone": "не телефон вовсе!",
		"model": "Lenovo Legion",
		"issue": "Артефакты",
	})
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.False(env.Status)
}

func (suite *RouterTestSuite) TestDashboardStatsOnSeed() {
	rec, env := suite.doJSON(http.MethodGet, "/api/dashboard/stats", nil)
	suite.Equal(http.StatusOK, rec.Code)

	var stats dto.DashboardStatsDTO
	suite.Require().NoError(json.Unmarshal(env.Body, &stats))
	suite.Equal(2, stats.ActiveOrders)
	suite.Equal(2, stats.LowStock)
	suite.Zero(stats.CompletedToday)
}

func (suite *RouterTestSuite) TestOrderSearch() {
	rec, env := suite.doJSON(http.MethodGet, "/api/orders?search=macbook", nil)
	suite.Equal(http.StatusOK, rec.Code)

	var orders []dto.OrderDTO
	suite.Require().NoError(json.Unmarshal(env.Body, &orders))
	suite.Require().Len(orders, 1)
	suite.Equal("1001", orders[0].ID)

	rec, env = suite.doJSON(http.MethodGet, "/api/orders?status=in_progress", nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Require().NoError(json.Unmarshal(env.Body, &orders))
	suite.Require().Len(orders, 1)
	suite.Equal("1002", orders[0].ID)
}

func (suite *RouterTestSuite) TestAttachPartUntilOutOfStock() {
	// Сид: запчасть "4" с остатком 1
	rec, _ := suite.doJSON(http.MethodPost, "/api/orders/1001/parts", dto.AttachPartDTO{PartID: "4"})
	suite.Equal(http.StatusOK, rec.Code)

	rec, env := suite.doJSON(http.MethodPost, "/api/orders/1001/parts", dto.AttachPartDTO{PartID: "4"})
	suite.Equal(http.StatusConflict, rec.Code)
	suite.False(env.Status)
	suite.Contains(env.Message, "нет в наличии")
}

func (suite *RouterTestSuite) TestAdjustQuantityClampedAtZero() {
	rec, _ := suite.doJSON(http.MethodPost, "/api/parts/4/adjust", dto.AdjustQuantityDTO{Delta: -1})
	suite.Equal(http.StatusOK, rec.Code)

	rec, env := suite.doJSON(http.MethodPost, "/api/parts/4/adjust", dto.AdjustQuantityDTO{Delta: -1})
	suite.Equal(http.StatusConflict, rec.Code)
	suite.False(env.Status)
}

func (suite *RouterTestSuite) TestUpdateMissingOrderIs404() {
	// Номера заказов начинаются с 1000, "0001" существовать не может
	rec, env := suite.doJSON(http.MethodPut, "/api/orders/0001", map[string]interface{}{"notes": "x"})
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.False(env.Status)
}

func (suite *RouterTestSuite) TestStatusDictionary() {
	rec, env := suite.doJSON(http.MethodGet, "/api/orders/statuses", nil)
	suite.Equal(http.StatusOK, rec.Code)

	var statuses []dto.OrderStatusDTO
	suite.Require().NoError(json.Unmarshal(env.Body, &statuses))
	suite.Require().Len(statuses, 4)
	suite.Equal("received", statuses[0].Code)
	suite.Equal("Принят", statuses[0].Label)
	suite.Equal("completed", statuses[3].Code)
}

func (suite *RouterTestSuite) TestReportJSON() {
	rec, env := suite.doJSON(http.MethodGet, "/api/reports/orders", nil)
	suite.Equal(http.StatusOK, rec.Code)

	var orders []dto.OrderDTO
	suite.Require().NoError(json.Unmarshal(env.Body, &orders))
	suite.Len(orders, 2)
}

func (suite *RouterTestSuite) TestReportXLSX() {
	req := httptest.NewRequest(http.MethodGet, "/api/reports/orders?format=xlsx", nil)
	rec := httptest.NewRecorder()
	suite.Echo.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal(
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get(echo.HeaderContentType),
	)
	suite.Contains(rec.Header().Get("Content-Disposition"), ".xlsx")
	suite.NotZero(rec.Body.Len())
}

func (suite *RouterTestSuite) TestCreateClientAndFindByPhone() {
	rec, env := suite.doJSON(http.MethodPost, "/api/clients", dto.CreateClientDTO{
		Name:  "Ольга Смирнова",
		Phone: "+7 902 000-11-22",
		Email: "olga@example.com",
	})
	suite.Equal(http.StatusCreated, rec.Code)

	var created dto.ClientDTO
	suite.Require().NoError(json.Unmarshal(env.Body, &created))
	suite.NotEmpty(created.ID)

	rec, env = suite.doJSON(http.MethodGet, fmt.Sprintf("/api/clients/find?phone=%s", "%2B7%20902%20000-11-22"), nil)
	suite.Equal(http.StatusOK, rec.Code)

	var found dto.ClientDTO
	suite.Require().NoError(json.Unmarshal(env.Body, &found))
	suite.Equal(created.ID, found.ID)

	rec, _ = suite.doJSON(http.MethodGet, "/api/clients/find?phone=%2B7%20000%20000-00-00", nil)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
