// Package texts holds the user-facing notification copy of the order flow.
// Delivery-pin guidance is shown in Vietnamese, matching the storefront.
package texts

const (
	TitleAtStore        = "At Store"
	MsgAtStore          = "You are currently at the Store!"
	TitleOverLimit      = "Over 15km"
	MsgOverLimit        = "Due to distance over 15km, special shipping fee applies."
	TitleApproximate    = "Vị trí tương đối"
	MsgApproximateFmt   = "Không tìm thấy số nhà chính xác. Đã ghim tại trung tâm %s. Vui lòng KÉO GHIM về đúng nhà."
	TitleStreetFound    = "Tìm thấy đường"
	MsgStreetFound      = "Đã tìm thấy con đường. Vui lòng KÉO GHIM ĐỎ về đúng số nhà của bạn."
	TitleCheckPin       = "Kiểm tra vị trí"
	MsgCheckPin         = "Đã ghim vị trí. Vui lòng kiểm tra và kéo ghim nếu chưa chính xác."
	TitleNotFound       = "Không tìm thấy"
	MsgNotFound         = "Rất tiếc, không tìm thấy địa chỉ này."
	TitleMissingInfo    = "Missing Information"
	MsgMissingInfo      = "Please select a delivery location first."
	TitleLocationDenied = "Location Unavailable"
	MsgLocationDenied   = "Unable to retrieve location."
	TitleCheckout       = "Proceeding to Payment"
	MsgCheckoutFmt      = "Shipping Fee: %sđ for %gkm"
	TitlePickup         = "Success"
	MsgPickup           = "Pickup order confirmed!"
)
