package models

import "time"

type Message struct {
	From string    `json:"from"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Thread is a buyer/seller conversation anchored to a product.
type Thread struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ProductID string    `json:"productId"`
	Archived  bool      `json:"archived"`
	Messages  []Message `json:"messages"`
}
