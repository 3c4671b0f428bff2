package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeExpenseAdded  = "expense.added"
	EventTypeCategoryAdded = "category.added"
	EventTypeDataCleared   = "data.cleared"
)

func newBaseEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

type ExpenseAddedEvent struct {
	BaseEvent
	ExpenseID string `json:"expense_id"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
}

func NewExpenseAddedEvent(expenseID, category, amount string) *ExpenseAddedEvent {
	return &ExpenseAddedEvent{
		BaseEvent: newBaseEvent(EventTypeExpenseAdded, map[string]interface{}{
			"expense_id": expenseID,
			"category":   category,
			"amount":     amount,
		}),
		ExpenseID: expenseID,
		Category:  category,
		Amount:    amount,
	}
}

type CategoryAddedEvent struct {
	BaseEvent
	Name string `json:"name"`
}

func NewCategoryAddedEvent(name string) *CategoryAddedEvent {
	return &CategoryAddedEvent{
		BaseEvent: newBaseEvent(EventTypeCategoryAdded, map[string]interface{}{
			"name": name,
		}),
		Name: name,
	}
}

type DataClearedEvent struct {
	BaseEvent
	RemovedExpenses int `json:"removed_expenses"`
}

func NewDataClearedEvent(removedExpenses int) *DataClearedEvent {
	return &DataClearedEvent{
		BaseEvent: newBaseEvent(EventTypeDataCleared, map[string]interface{}{
			"removed_expenses": removedExpenses,
		}),
		RemovedExpenses: removedExpenses,
	}
}
