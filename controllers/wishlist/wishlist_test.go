package wishlistControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAddToWishlistNaturalKey(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second add of the same pair is rejected", func(mt *mtest.T) {
		ns := fmt.Sprintf("%s.%s", mt.DB.Name(), mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}))

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/wishList", AddToWishlist(mt.Coll))

		req := httptest.NewRequest(http.MethodPost, "/wishList", strings.NewReader(`{"userId":"u1","toyId":"t1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			mt.Errorf("status = %d, want 409", w.Code)
		}
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName == "insert" {
				mt.Error("duplicate add issued an insert command")
			}
		}
	})

	mt.Run("first add of a pair inserts", func(mt *mtest.T) {
		ns := fmt.Sprintf("%s.%s", mt.DB.Name(), mt.Coll.Name())
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(0)}}),
			mtest.CreateSuccessResponse(),
		)

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.POST("/wishList", AddToWishlist(mt.Coll))

		req := httptest.NewRequest(http.MethodPost, "/wishList", strings.NewReader(`{"userId":"u1","toyId":"t1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			mt.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}
		inserted := false
		for _, ev := range mt.GetAllStartedEvents() {
			if ev.CommandName == "insert" {
				inserted = true
			}
		}
		if !inserted {
			mt.Error("add of a new pair never issued an insert command")
		}
	})
}

func TestRemoveFromWishlistIdempotent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("repeat delete of an absent pair", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.DELETE("/wishList", RemoveFromWishlist(mt.Coll))

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodDelete, "/wishList?userId=u1&toyId=t1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusNotFound {
				mt.Errorf("delete #%d: status = %d, want 404", i+1, w.Code)
			}
		}
	})
}

func TestWishlistValidationShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/wishList", AddToWishlist(nil))
	r.DELETE("/wishList", RemoveFromWishlist(nil))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"add missing toyId", http.MethodPost, "/wishList", `{"userId":"u1"}`},
		{"add missing userId", http.MethodPost, "/wishList", `{"toyId":"t1"}`},
		{"add empty body", http.MethodPost, "/wishList", `{}`},
		{"remove missing toyId", http.MethodDelete, "/wishList?userId=u1", ``},
		{"remove missing userId", http.MethodDelete, "/wishList?toyId=t1", ``},
		{"remove missing both", http.MethodDelete, "/wishList", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
