// Package i18n maps translation keys to display text. Unknown keys fall
// back to the key itself so a missing entry never blanks the UI.
package i18n

// Translator resolves keys against the static table for one language
type Translator struct {
	language string
	table    map[string]string
}

// New returns a translator for the given language code, defaulting to
// English when the language is unknown
func New(language string) *Translator {
	table, ok := translations[language]
	if !ok {
		language = "en"
		table = translations["en"]
	}
	return &Translator{language: language, table: table}
}

// Language returns the active language code
func (t *Translator) Language() string {
	return t.language
}

// IsRTL reports whether the language reads right to left
func (t *Translator) IsRTL() bool {
	return t.language == "ar"
}

// Translate returns the display text for the key
func (t *Translator) Translate(key string) string {
	if text, ok := t.table[key]; ok {
		return text
	}
	return key
}

var translations = map[string]map[string]string{
	"en": {
		"store.name":             "AS",
		"store.description":      "Your trusted online store",
		"cart.empty":             "Your cart is empty",
		"cart.subtotal":          "Subtotal",
		"cart.shipping":          "Shipping",
		"cart.tax":               "Tax",
		"cart.total":             "Total",
		"checkout.title":         "Checkout",
		"checkout.shipping":      "Shipping",
		"checkout.payment":       "Payment",
		"checkout.review":        "Review",
		"checkout.homeDelivery":  "Home Delivery",
		"checkout.stopDesk":      "Stop Desk",
		"checkout.selectState":   "Select your state",
		"checkout.invalidCode":   "Invalid or expired discount code",
		"checkout.missingFields": "Please fill in all required fields",
		"checkout.orderPlaced":   "Order Placed Successfully!",
		"checkout.duplicateCode": "A discount code with this name already exists",
	},
	"fr": {
		"store.name":             "AS",
		"store.description":      "Votre boutique en ligne de confiance",
		"cart.empty":             "Votre panier est vide",
		"cart.subtotal":          "Sous-total",
		"cart.shipping":          "Livraison",
		"cart.tax":               "Taxe",
		"cart.total":             "Total",
		"checkout.title":         "Paiement",
		"checkout.shipping":      "Livraison",
		"checkout.payment":       "Paiement",
		"checkout.review":        "Vérification",
		"checkout.homeDelivery":  "Livraison à domicile",
		"checkout.stopDesk":      "Point de retrait",
		"checkout.selectState":   "Sélectionnez votre wilaya",
		"checkout.invalidCode":   "Code de réduction invalide ou expiré",
		"checkout.missingFields": "Veuillez remplir tous les champs obligatoires",
		"checkout.orderPlaced":   "Commande passée avec succès !",
		"checkout.duplicateCode": "Un code de réduction portant ce nom existe déjà",
	},
	"ar": {
		"store.name":             "AS",
		"store.description":      "متجرك الإلكتروني الموثوق",
		"cart.empty":             "سلة التسوق فارغة",
		"cart.subtotal":          "المجموع الفرعي",
		"cart.shipping":          "التوصيل",
		"cart.tax":               "الضريبة",
		"cart.total":             "المجموع",
		"checkout.title":         "الدفع",
		"checkout.shipping":      "التوصيل",
		"checkout.payment":       "الدفع",
		"checkout.review":        "المراجعة",
		"checkout.homeDelivery":  "التوصيل إلى المنزل",
		"checkout.stopDesk":      "نقطة الاستلام",
		"checkout.selectState":   "اختر ولايتك",
		"checkout.invalidCode":   "كود الخصم غير صالح أو منتهي الصلاحية",
		"checkout.missingFields": "يرجى ملء جميع الحقول المطلوبة",
		"checkout.orderPlaced":   "تم تقديم الطلب بنجاح!",
		"checkout.duplicateCode": "يوجد كود خصم بهذا الاسم بالفعل",
	},
}
