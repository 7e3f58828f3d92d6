package commands

import (
	"fmt"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
)

const (
	newOrderTitle       = "Yangi buyurtma"
	orderDeliveredTitle = "Buyurtma yetkazildi"
)

func newOrderNotification(clientName string, o *order.Order) ports.Notification {
	orderID := o.ID()
	return ports.Notification{
		Title: newOrderTitle,
		Message: fmt.Sprintf(
			"Client %s buyurtma berdi #%s: %d ta, %s UZS",
			clientName, shortID(orderID), o.BottleCount(), o.DebtChange(),
		),
		CreatedOrderID: &orderID,
	}
}

func orderDeliveredNotification(courierName string, o *order.Order) ports.Notification {
	orderID := o.ID()
	return ports.Notification{
		Title: orderDeliveredTitle,
		Message: fmt.Sprintf(
			"✅ Buyurtma yetkazildi\nOrder ID: #%s\nCourier: %s",
			shortID(orderID), courierName,
		),
		CreatedOrderID: &orderID,
	}
}

func shortID(id kernel.UUID) string {
	return id.String()[:8]
}
