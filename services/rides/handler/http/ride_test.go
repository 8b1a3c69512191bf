package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/rides/mocks"
)

func newRideContext(method, target, body string, rideID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if rideID != uuid.Nil {
		c.SetParamNames("rideID")
		c.SetParamValues(rideID.String())
	}
	return c, rec
}

func TestVerifyOTPWrongCodeMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockRideUC(ctrl)
	rideID := uuid.New()
	uc.EXPECT().VerifyStart(gomock.Any(), rideID, "000000").Return(nil, models.ErrOTPInvalid)

	c, rec := newRideContext(http.MethodPost, "/rides/"+rideID.String()+"/verify-otp", `{"code":"000000"}`, rideID)
	assert.NoError(t, NewRidesHandler(uc).VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTPCompletedRideMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockRideUC(ctrl)
	rideID := uuid.New()
	uc.EXPECT().VerifyStart(gomock.Any(), rideID, "482913").Return(nil, models.ErrInvalidTransition)

	c, rec := newRideContext(http.MethodPost, "/rides/"+rideID.String()+"/verify-otp", `{"code":"482913"}`, rideID)
	assert.NoError(t, NewRidesHandler(uc).VerifyOTP(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStartRideSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockRideUC(ctrl)
	rideID := uuid.New()
	uc.EXPECT().Begin(gomock.Any(), rideID).
		Return(&models.Ride{RideID: rideID, Status: models.RideStatusInProgress}, nil)

	c, rec := newRideContext(http.MethodPost, "/rides/"+rideID.String()+"/start", "", rideID)
	assert.NoError(t, NewRidesHandler(uc).Start(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(models.RideStatusInProgress))
}

func TestCompleteRideInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockRideUC(ctrl)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rides/not-a-uuid/complete", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("rideID")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, NewRidesHandler(uc).Complete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentRequiresIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockRideUC(ctrl)
	c, rec := newRideContext(http.MethodGet, "/rides/current", "", uuid.Nil)
	assert.NoError(t, NewRidesHandler(uc).Current(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentByDriverNoActiveRideMapsTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockRideUC(ctrl)
	uc.EXPECT().CurrentByDriver(gomock.Any(), "driver@example.com").Return(nil, models.ErrRideNotFound)

	c, rec := newRideContext(http.MethodGet, "/rides/current?driver_email=driver@example.com", "", uuid.Nil)
	assert.NoError(t, NewRidesHandler(uc).Current(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
