package i18n

// catalog 消息表，键按 error / success / validation / email 分组
var catalog = map[string]map[string]string{
	LocaleID: {
		// 通用
		"error.bad_request":            "Permintaan tidak valid.",
		"error.unauthorized":           "Akses tidak diizinkan.",
		"error.auth_required":          "Silakan login terlebih dahulu.",
		"error.auth_header_missing":    "Header otorisasi tidak ditemukan.",
		"error.auth_header_invalid":    "Format header otorisasi tidak valid.",
		"error.token_invalid":          "Sesi tidak valid, silakan login kembali.",
		"error.token_revoked":          "Sesi telah berakhir, silakan login kembali.",
		"error.validation_failed":      "Periksa kembali data yang diisi.",
		"error.not_found":              "Halaman tidak ditemukan.",
		"error.too_many_requests":      "Terlalu banyak permintaan, coba lagi dalam %d detik.",
		"error.login_too_many":         "Terlalu banyak percobaan login, coba lagi dalam %d detik.",
		"error.rate_limit_unavailable": "Layanan sedang sibuk, coba lagi nanti.",

		// 验证码
		"error.captcha_required":        "Kode captcha wajib diisi.",
		"error.captcha_invalid":         "Kode captcha salah atau kedaluwarsa.",
		"error.captcha_verify_failed":   "Gagal memverifikasi captcha.",
		"error.captcha_generate_failed": "Gagal membuat captcha.",

		// 认证
		"error.email_invalid":            "Format email tidak valid.",
		"error.login_invalid":            "Email atau kata sandi salah.",
		"error.email_exists":             "Email sudah terdaftar.",
		"error.user_disabled":            "Akun dinonaktifkan.",
		"error.password_weak":            "Kata sandi terlalu lemah.",
		"error.password_require_upper":   "Kata sandi harus mengandung huruf besar.",
		"error.password_require_lower":   "Kata sandi harus mengandung huruf kecil.",
		"error.password_require_number":  "Kata sandi harus mengandung angka.",
		"error.password_require_special": "Kata sandi harus mengandung karakter khusus.",
		"error.register_failed":          "Pendaftaran gagal, silakan coba lagi.",
		"error.login_failed":             "Login gagal, silakan coba lagi.",
		"error.logout_failed":            "Logout gagal, silakan coba lagi.",

		// 资料
		"error.profile_fetch_failed":  "Gagal memuat profil.",
		"error.profile_update_failed": "Gagal memperbarui profil.",
		"error.profile_not_found":     "Profil tidak ditemukan.",
		"error.profile_incomplete":    "Lengkapi nomor telepon dan alamat pada profil sebelum checkout.",

		// 商品
		"error.product_not_found":    "Produk tidak ditemukan.",
		"error.variant_not_found":    "Varian produk tidak ditemukan.",
		"error.product_out_of_stock": "Stok produk habis.",
		"error.product_fetch_failed": "Gagal memuat produk.",

		// 购物车
		"error.cart_quantity_exceeds_stock": "Jumlah melebihi stok yang tersedia.",
		"error.cart_item_not_found":         "Item keranjang tidak ditemukan.",
		"error.cart_login_required":         "Silakan login terlebih dahulu untuk menambahkan produk ke keranjang.",
		"error.cart_add_failed":             "Gagal menambahkan produk ke keranjang.",
		"error.cart_fetch_failed":           "Gagal memuat keranjang.",
		"error.cart_update_failed":          "Gagal memperbarui jumlah produk.",
		"error.cart_remove_failed":          "Gagal menghapus produk dari keranjang.",
		"error.cart_empty":                  "Keranjang Anda kosong.",

		// 订单与留言
		"error.order_too_many_items":  "Jumlah item pesanan melebihi batas.",
		"error.order_not_found":       "Pesanan tidak ditemukan.",
		"error.order_create_failed":   "Gagal membuat pesanan, silakan coba lagi.",
		"error.order_fetch_failed":    "Gagal memuat pesanan.",
		"error.contact_submit_failed": "Gagal mengirim pesan, silakan coba lagi.",

		"success.register":        "Pendaftaran berhasil.",
		"success.login":           "Login berhasil.",
		"success.logout":          "Anda telah logout.",
		"success.cart_added":      "Produk berhasil ditambahkan ke keranjang.",
		"success.cart_updated":    "Jumlah produk diperbarui.",
		"success.cart_removed":    "Produk dihapus dari keranjang.",
		"success.order_placed":    "Pesanan berhasil dibuat.",
		"success.profile_updated": "Profil berhasil diperbarui!",
		"success.contact_sent":    "Pesan Anda telah terkirim. Terima kasih!",

		"validation.required":                "Wajib diisi.",
		"validation.min_length":              "Minimal %d karakter.",
		"validation.max_length":              "Maksimal %d karakter.",
		"validation.email_invalid":           "Format email tidak valid.",
		"validation.url_invalid":             "URL tidak valid.",
		"validation.password_mismatch":       "Konfirmasi kata sandi tidak cocok.",
		"validation.payment_method_required": "Pilih metode pembayaran.",
		"validation.payment_method_invalid":  "Metode pembayaran tidak valid.",

		"payment_method.bank_transfer": "Transfer Bank",
		"payment_method.e_wallet":      "E-Wallet",
		"payment_method.cod":           "Bayar di Tempat (COD)",

		"email.order_placed.subject":     "Pesanan %s telah kami terima",
		"email.order_placed.body":        "Terima kasih telah berbelanja di Geoda Coffee.\n\nNomor pesanan: %s\n\n%s\nTotal: %s\nMetode pembayaran: %s\nAlamat pengiriman: %s\n\nKami akan segera memproses pesanan Anda.",
		"email.contact_received.subject": "Pesan Anda telah kami terima",
		"email.contact_received.body":    "Halo %s,\n\nTerima kasih telah menghubungi Geoda Coffee. Pesan Anda dengan subjek \"%s\" sudah kami terima dan akan kami balas secepatnya.",
	},
	LocaleEN: {
		"error.bad_request":            "Invalid request.",
		"error.unauthorized":           "Unauthorized.",
		"error.auth_required":          "Please sign in first.",
		"error.auth_header_missing":    "Authorization header is missing.",
		"error.auth_header_invalid":    "Authorization header is malformed.",
		"error.token_invalid":          "Session is invalid, please sign in again.",
		"error.token_revoked":          "Session has expired, please sign in again.",
		"error.validation_failed":      "Please check the submitted fields.",
		"error.not_found":              "Not found.",
		"error.too_many_requests":      "Too many requests, try again in %d seconds.",
		"error.login_too_many":         "Too many sign-in attempts, try again in %d seconds.",
		"error.rate_limit_unavailable": "Service is busy, please try again later.",

		"error.captcha_required":        "Captcha code is required.",
		"error.captcha_invalid":         "Captcha code is wrong or expired.",
		"error.captcha_verify_failed":   "Failed to verify captcha.",
		"error.captcha_generate_failed": "Failed to generate captcha.",

		"error.email_invalid":            "Invalid email address.",
		"error.login_invalid":            "Incorrect email or password.",
		"error.email_exists":             "Email is already registered.",
		"error.user_disabled":            "Account is disabled.",
		"error.password_weak":            "Password is too weak.",
		"error.password_require_upper":   "Password must contain an uppercase letter.",
		"error.password_require_lower":   "Password must contain a lowercase letter.",
		"error.password_require_number":  "Password must contain a number.",
		"error.password_require_special": "Password must contain a special character.",
		"error.register_failed":          "Sign-up failed, please try again.",
		"error.login_failed":             "Sign-in failed, please try again.",
		"error.logout_failed":            "Sign-out failed, please try again.",

		"error.profile_fetch_failed":  "Failed to load profile.",
		"error.profile_update_failed": "Failed to update profile.",
		"error.profile_not_found":     "Profile not found.",
		"error.profile_incomplete":    "Complete the phone number and address in your profile before checkout.",

		"error.product_not_found":    "Product not found.",
		"error.variant_not_found":    "Product variant not found.",
		"error.product_out_of_stock": "Product is out of stock.",
		"error.product_fetch_failed": "Failed to load products.",

		"error.cart_quantity_exceeds_stock": "Quantity exceeds available stock.",
		"error.cart_item_not_found":         "Cart item not found.",
		"error.cart_login_required":         "Please sign in to add products to your cart.",
		"error.cart_add_failed":             "Failed to add product to cart.",
		"error.cart_fetch_failed":           "Failed to load cart.",
		"error.cart_update_failed":          "Failed to update quantity.",
		"error.cart_remove_failed":          "Failed to remove product from cart.",
		"error.cart_empty":                  "Your cart is empty.",

		"error.order_too_many_items":  "Order has too many items.",
		"error.order_not_found":       "Order not found.",
		"error.order_create_failed":   "Failed to place order, please try again.",
		"error.order_fetch_failed":    "Failed to load orders.",
		"error.contact_submit_failed": "Failed to send message, please try again.",

		"success.register":        "Signed up successfully.",
		"success.login":           "Signed in successfully.",
		"success.logout":          "You have signed out.",
		"success.cart_added":      "Product added to cart.",
		"success.cart_updated":    "Quantity updated.",
		"success.cart_removed":    "Product removed from cart.",
		"success.order_placed":    "Order placed successfully.",
		"success.profile_updated": "Profile updated!",
		"success.contact_sent":    "Your message has been sent. Thank you!",

		"validation.required":                "This field is required.",
		"validation.min_length":              "Must be at least %d characters.",
		"validation.max_length":              "Must be at most %d characters.",
		"validation.email_invalid":           "Invalid email address.",
		"validation.url_invalid":             "Invalid URL.",
		"validation.password_mismatch":       "Passwords do not match.",
		"validation.payment_method_required": "Please choose a payment method.",
		"validation.payment_method_invalid":  "Invalid payment method.",

		"payment_method.bank_transfer": "Bank Transfer",
		"payment_method.e_wallet":      "E-Wallet",
		"payment_method.cod":           "Cash on Delivery",

		"email.order_placed.subject":     "We received your order %s",
		"email.order_placed.body":        "Thank you for shopping at Geoda Coffee.\n\nOrder number: %s\n\n%s\nTotal: %s\nPayment method: %s\nShipping address: %s\n\nWe will process your order shortly.",
		"email.contact_received.subject": "We received your message",
		"email.contact_received.body":    "Hi %s,\n\nThank you for contacting Geoda Coffee. We received your message about \"%s\" and will reply as soon as possible.",
	},
}
