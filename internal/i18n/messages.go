package i18n

var messagesTR = map[string]string{
	"status.waiting_for_payment":  "Ödeme Bekleniyor",
	"status.waiting_for_authors":  "Yazarlar Bekleniyor",
	"status.waiting_for_referees": "Hakemler Bekleniyor",
	"status.waiting_for_editors":  "Editörler Bekleniyor",
	"status.accepted":             "Kabul Edildi",
	"status.not_accepted":         "Kabul Edilmedi",
	"status.pending":              "Beklemede",
	"status.rejected":             "Reddedildi",

	"role.writer":     "Yazar",
	"role.editor":     "Editör",
	"role.arbitrator": "Hakem",
	"role.admin":      "Yönetici",
	"role.owner":      "Sahip",

	"journal.editor_in_chief":   "Baş Editör",
	"journal.editors":           "Editörler",
	"journal.unassigned":        "Atanmamış",
	"journal.published":         "Yayınlandı",
	"journal.not_published":     "Yayınlanmadı",
	"journal.table_of_contents": "İçindekiler",
	"journal.merge_files":       "Dosyaları Birleştir",

	"entry.authors":        "Yazarlar",
	"entry.referees":       "Hakemler",
	"entry.keywords":       "Anahtar Kelimeler",
	"entry.abstract":       "Özet",
	"entry.published_in":   "Yayınlandığı Dergi",
	"entry.download_count": "İndirme Sayısı",
	"entry.read_count":     "Okunma Sayısı",

	"payment.instructions": "Ödeme Talimatları",
	"payment.token":        "Ödeme Referans Kodu",

	"common.login":         "Giriş Yap",
	"common.logout":        "Çıkış Yap",
	"common.register":      "Kayıt Ol",
	"common.save":          "Kaydet",
	"common.cancel":        "İptal",
	"common.search":        "Ara",
	"common.not_found":     "Bulunamadı veya erişim izniniz yok",
	"common.access_denied": "Bulunamadı veya erişim izniniz yok",
}

var messagesEN = map[string]string{
	"status.waiting_for_payment":  "Waiting for Payment",
	"status.waiting_for_authors":  "Waiting for Authors",
	"status.waiting_for_referees": "Waiting for Referees",
	"status.waiting_for_editors":  "Waiting for Editors",
	"status.accepted":             "Accepted",
	"status.not_accepted":         "Not Accepted",
	"status.pending":              "Pending",
	"status.rejected":             "Rejected",

	"role.writer":     "Author",
	"role.editor":     "Editor",
	"role.arbitrator": "Referee",
	"role.admin":      "Administrator",
	"role.owner":      "Owner",

	"journal.editor_in_chief":   "Editor in Chief",
	"journal.editors":           "Editors",
	"journal.unassigned":        "Unassigned",
	"journal.published":         "Published",
	"journal.not_published":     "Not Published",
	"journal.table_of_contents": "Table of Contents",
	"journal.merge_files":       "Merge Files",

	"entry.authors":        "Authors",
	"entry.referees":       "Referees",
	"entry.keywords":       "Keywords",
	"entry.abstract":       "Abstract",
	"entry.published_in":   "Published In",
	"entry.download_count": "Downloads",
	"entry.read_count":     "Reads",

	"payment.instructions": "Payment Instructions",
	"payment.token":        "Payment Reference Code",

	"common.login":         "Log In",
	"common.logout":        "Log Out",
	"common.register":      "Register",
	"common.save":          "Save",
	"common.cancel":        "Cancel",
	"common.search":        "Search",
	"common.not_found":     "Not found or access denied",
	"common.access_denied": "Not found or access denied",
}
