package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

type order struct {
	ID string `json:"id"`
}

func main() {
	baseURL := flag.String("api", "http://localhost:8080", "fulfillment service address")
	flag.Parse()

	for {
		ids, err := officeOrders(*baseURL)
		if err != nil {
			fmt.Println("Ошибка запроса:", err)
			time.Sleep(time.Second)
			continue
		}

		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(*baseURL, ids) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func officeOrders(baseURL string) ([]string, error) {
	resp, err := http.Get(baseURL + "/orders?status=ARRIVED_AT_OFFICE&limit=20")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids, nil
}

func doRequest(baseURL string, ids []string) {
	url := baseURL + "/drawers"
	if len(ids) > 0 {
		id := ids[rand.Intn(len(ids))]
		url = fmt.Sprintf("%s/orders/%s/slot-suggestion", baseURL, id)
		if rand.Intn(3) == 0 {
			url = fmt.Sprintf("%s/orders/%s", baseURL, id)
		}
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
