package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
)

// Метрики
var (
	opsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_operations_total",
		Help: "Количество запросов к order-service по операции и коду ответа",
	}, []string{"operation", "status"})

	opsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_operation_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"operation"})
)

type generator struct {
	baseURL string
	secret  []byte
	client  *http.Client
}

type orderResponse struct {
	ID string `json:"id"`
}

func (g *generator) token(userID, role string) string {
	claims := jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"exp":    time.Now().Add(time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	return signed
}

func (g *generator) call(operation, method, path, userID, role string, body any, out any) {
	start := time.Now()
	defer func() {
		opsDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			log.Printf("encode %s: %v", operation, err)
			return
		}
	}

	req, err := http.NewRequest(method, g.baseURL+path, &payload)
	if err != nil {
		log.Printf("build %s: %v", operation, err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+g.token(userID, role))
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		opsCounter.WithLabelValues(operation, "error").Inc()
		return
	}
	defer resp.Body.Close()

	opsCounter.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	if out != nil && resp.StatusCode < 300 {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
}

// round - один сценарий: клиент делает заказ, курьер смотрит список и забирает заказ.
func (g *generator) round() {
	customerID := fmt.Sprintf("customer-%d", rand.IntN(50))
	courierID := fmt.Sprintf("courier-%d", rand.IntN(10))
	quantity := 1 + rand.IntN(3)

	var order orderResponse
	g.call("place_order", http.MethodPost, "/order", customerID, "customer", map[string]any{
		"customer_id":   customerID,
		"restaurant_id": fmt.Sprintf("restaurant-%d", rand.IntN(5)),
		"items": []map[string]any{
			{"menu_item_id": "m1", "quantity": quantity, "unit_price": 15},
		},
		"total_amount": float64(quantity * 15),
	}, &order)

	g.call("list_claimable", http.MethodGet, "/delivery", courierID, "delivery_personnel", nil, nil)

	if order.ID == "" {
		return
	}
	g.call("get_order", http.MethodGet, "/order/"+order.ID, customerID, "customer", nil, nil)
	g.call("claim", http.MethodPost, "/delivery/"+order.ID, courierID, "delivery_personnel", nil, nil)
}

func main() {
	baseURL := pflag.String("target", "http://localhost:8080", "адрес order-service")
	secret := pflag.String("secret", "local-secret", "секрет для подписи JWT, как JWT_SECRET сервиса")
	interval := pflag.Duration("interval", time.Second, "пауза между сценариями")
	metricsAddr := pflag.String("metrics-addr", ":2112", "адрес для /metrics")
	pflag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}()

	g := &generator{
		baseURL: *baseURL,
		secret:  []byte(*secret),
		client:  &http.Client{Timeout: 5 * time.Second},
	}

	for {
		g.round()
		time.Sleep(*interval)
	}
}
