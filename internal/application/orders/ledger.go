package orders

import "github.com/shopspring/decimal"

// Aritmética compartida de deuda y stock. Funciones puras: los casos de uso de
// pedidos las aplican siempre dentro de la transacción que persiste el cambio.

// DebtAfterPayment devuelve la deuda del cliente tras aplicar un pedido de
// total `total` con pago `paid`:
//   - pago insuficiente o exacto: la deuda sube en (total - paid);
//   - sobrepago: la deuda baja en el excedente, con piso en 0. El excedente por
//     encima de la deuda existente se descarta, no queda como crédito.
func DebtAfterPayment(debt, total, paid decimal.Decimal) decimal.Decimal {
	extra := paid.Sub(total)
	if extra.GreaterThan(decimal.Zero) {
		result := debt.Sub(extra)
		if result.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		return result
	}
	return debt.Add(total.Sub(paid))
}

// DebtAfterReversal deshace el efecto neto de un pedido sobre la deuda:
// debt - total + paid. No recorta en 0: el valor puede quedar transitoriamente
// negativo durante una edición, antes de aplicar las líneas nuevas.
func DebtAfterReversal(debt, total, paid decimal.Decimal) decimal.Decimal {
	return debt.Sub(total).Add(paid)
}

// ClampStock aplica un delta al stock con piso en 0. La venta por encima del
// disponible no se rechaza, solo se recorta; el caso de uso emite el aviso.
func ClampStock(stock, delta int) int {
	result := stock + delta
	if result < 0 {
		return 0
	}
	return result
}
