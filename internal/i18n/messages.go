package i18n

// messages holds the per-locale catalog. Keys absent from a locale fall
// back to Portuguese in T.
var messages = map[string]map[string]string{
	LocalePT: {
		"cert.invalid_data":       "Dados inválidos. É necessário fornecer 3 palavras-chave.",
		"cert.name_min":           "Nome deve ter pelo menos 2 caracteres",
		"cert.too_many_attempts":  "Muitas tentativas. Tente novamente em 1 hora.",
		"cert.event_not_found":    "Evento não encontrado ou certificados não habilitados",
		"cert.keywords_mismatch":  "Você acertou %d/3 palavras-chave. Mínimo necessário: %d/3",
		"cert.already_issued":     "Certificado já emitido em %s",
		"cert.success":            "Certificado emitido com sucesso!",
		"cert.code_missing":       "Código não fornecido",
		"cert.not_found":          "Certificado não encontrado ou inválido",
		"cert.not_found_exact":    "Certificado não encontrado com este código exato.",
		"cert.suggestion":         "Você quis dizer:",
		"cert.valid":              "Certificado válido",

		"error.internal":                  "Erro interno do servidor",
		"error.bad_request":               "Requisição inválida",
		"error.not_found":                 "Recurso não encontrado",
		"error.unauthorized":              "Não autorizado",
		"error.forbidden":                 "Acesso negado",
		"error.rate_limited":              "Muitas requisições. Tente novamente em %d segundos.",
		"error.rate_limit_unavailable":    "Serviço de limite de requisições indisponível",
		"error.auth_header_missing":       "Cabeçalho de autorização ausente",
		"error.auth_header_invalid":       "Cabeçalho de autorização inválido",
		"error.token_invalid":             "Token inválido",
		"error.token_revoked":             "Token revogado",
		"error.jwt_secret_missing":        "Segredo JWT não configurado",
		"error.login_failed":              "Usuário ou senha incorretos",
		"error.login_too_many":            "Muitas tentativas de login. Tente novamente em %d segundos.",
		"error.email_invalid":             "E-mail inválido",
		"error.event_fetch_failed":        "Falha ao carregar eventos",
		"error.event_not_found":           "Evento não encontrado",
		"error.post_fetch_failed":         "Falha ao carregar publicações",
		"error.post_not_found":            "Publicação não encontrada",
		"error.banner_fetch_failed":       "Falha ao carregar banners",
		"error.category_not_found":        "Categoria de inscrição não encontrada",
		"error.category_inactive":         "Categoria de inscrição indisponível",
		"error.registration_failed":       "Falha ao processar inscrição",
		"error.registration_not_found":    "Inscrição não encontrada",
		"error.session_missing":           "Identificador de sessão de pagamento ausente",
		"error.payment_gateway_failed":    "Falha na comunicação com o provedor de pagamento",
		"error.payment_not_confirmed":     "Pagamento ainda não confirmado",
		"error.webhook_invalid":           "Notificação de pagamento inválida",
		"error.work_submit_failed":        "Falha ao enviar trabalho",
		"error.work_not_found":            "Trabalho não encontrado",
		"error.upload_failed":             "Falha ao salvar arquivo",
		"error.cert_config_invalid":       "Configuração de certificado inválida",
		"error.finance_fetch_failed":      "Falha ao carregar dados financeiros",
		"error.finance_range_invalid":     "Intervalo de datas inválido",
		"error.name_invalid":              "Nome inválido",
		"error.slug_exists":               "Identificador já está em uso",
		"error.translation_invalid":       "Tradução inválida: idioma e título são obrigatórios",
		"error.status_invalid":            "Status inválido",
		"error.banner_invalid":            "Dados do banner inválidos",
		"error.post_type_invalid":         "Tipo de publicação inválido",
		"error.password_invalid":          "Senha inválida ou muito curta",
		"error.payment_not_enabled":       "Pagamento online não habilitado",
		"error.role_invalid":              "Papel inválido",
		"error.admin_protected":           "Administrador protegido não pode ser removido",
		"error.admin_id_invalid":          "Identificador de administrador inválido",
		"error.admin_id_type_invalid":     "Tipo do identificador de administrador inválido",

		"msg.registration_confirmed": "Inscrição confirmada com sucesso!",
		"msg.registration_pending":   "Inscrição registrada. Conclua o pagamento para confirmar.",
		"msg.work_received":          "Trabalho recebido com sucesso!",

		"email.certificate.subject":  "Seu certificado - %s",
		"email.certificate.body":     "Olá %s,\n\nSeu certificado do evento %s foi emitido.\n\nCódigo de verificação: %s\nDownload: %s",
		"email.registration.subject": "Inscrição confirmada - %s",
		"email.registration.body":    "Olá %s,\n\nSua inscrição %s no evento %s foi confirmada.",
		"email.work.subject":         "Trabalho recebido - %s",
		"email.work.body":            "Olá %s,\n\nSeu trabalho \"%s\" foi recebido e será avaliado pela comissão científica.",
	},
	LocaleEN: {
		"cert.invalid_data":      "Invalid data. 3 keywords are required.",
		"cert.name_min":          "Name must be at least 2 characters",
		"cert.too_many_attempts": "Too many attempts. Try again in 1 hour.",
		"cert.event_not_found":   "Event not found or certificates not enabled",
		"cert.keywords_mismatch": "You got %d/3 keywords correct. Minimum required: %d/3",
		"cert.already_issued":    "Certificate already issued on %s",
		"cert.success":           "Certificate issued successfully!",
		"cert.code_missing":      "Code not provided",
		"cert.not_found":         "Certificate not found or invalid",
		"cert.not_found_exact":   "No certificate found with this exact code.",
		"cert.suggestion":        "Did you mean:",
		"cert.valid":             "Valid certificate",

		"error.internal":               "Internal server error",
		"error.bad_request":            "Invalid request",
		"error.not_found":              "Resource not found",
		"error.unauthorized":           "Unauthorized",
		"error.forbidden":              "Forbidden",
		"error.rate_limited":           "Too many requests. Try again in %d seconds.",
		"error.rate_limit_unavailable": "Rate limit service unavailable",
		"error.auth_header_missing":    "Authorization header missing",
		"error.auth_header_invalid":    "Authorization header invalid",
		"error.token_invalid":          "Invalid token",
		"error.token_revoked":          "Token revoked",
		"error.jwt_secret_missing":     "JWT secret not configured",
		"error.login_failed":           "Incorrect username or password",
		"error.login_too_many":         "Too many login attempts. Try again in %d seconds.",
		"error.email_invalid":          "Invalid email",
		"error.event_fetch_failed":     "Failed to load events",
		"error.event_not_found":        "Event not found",
		"error.post_fetch_failed":      "Failed to load posts",
		"error.post_not_found":         "Post not found",
		"error.banner_fetch_failed":    "Failed to load banners",
		"error.category_not_found":     "Registration category not found",
		"error.category_inactive":      "Registration category unavailable",
		"error.registration_failed":    "Failed to process registration",
		"error.registration_not_found": "Registration not found",
		"error.session_missing":        "Payment session identifier missing",
		"error.payment_gateway_failed": "Payment provider communication failed",
		"error.payment_not_confirmed":  "Payment not confirmed yet",
		"error.webhook_invalid":        "Invalid payment notification",
		"error.work_submit_failed":     "Failed to submit work",
		"error.work_not_found":         "Work not found",
		"error.upload_failed":          "Failed to store file",
		"error.cert_config_invalid":    "Invalid certificate configuration",
		"error.finance_fetch_failed":   "Failed to load financial data",
		"error.finance_range_invalid":  "Invalid date range",
		"error.name_invalid":           "Invalid name",
		"error.slug_exists":            "Identifier already in use",
		"error.translation_invalid":    "Invalid translation: locale and title are required",
		"error.status_invalid":         "Invalid status",
		"error.banner_invalid":         "Invalid banner data",
		"error.post_type_invalid":      "Invalid post type",
		"error.password_invalid":       "Invalid or too short password",
		"error.payment_not_enabled":    "Online payment not enabled",
		"error.role_invalid":           "Invalid role",
		"error.admin_protected":        "Protected administrator cannot be removed",
		"error.admin_id_invalid":       "Invalid administrator identifier",
		"error.admin_id_type_invalid":  "Invalid administrator identifier type",

		"msg.registration_confirmed": "Registration confirmed successfully!",
		"msg.registration_pending":   "Registration recorded. Complete the payment to confirm.",
		"msg.work_received":          "Work received successfully!",

		"email.certificate.subject":  "Your certificate - %s",
		"email.certificate.body":     "Hello %s,\n\nYour certificate for %s has been issued.\n\nVerification code: %s\nDownload: %s",
		"email.registration.subject": "Registration confirmed - %s",
		"email.registration.body":    "Hello %s,\n\nYour registration %s for %s has been confirmed.",
		"email.work.subject":         "Work received - %s",
		"email.work.body":            "Hello %s,\n\nYour work \"%s\" has been received and will be reviewed by the scientific committee.",
	},
	LocaleES: {
		"cert.invalid_data":      "Datos inválidos. Se requieren 3 palabras clave.",
		"cert.name_min":          "El nombre debe tener al menos 2 caracteres",
		"cert.too_many_attempts": "Demasiados intentos. Inténtelo de nuevo en 1 hora.",
		"cert.event_not_found":   "Evento no encontrado o certificados no habilitados",
		"cert.keywords_mismatch": "Acertó %d/3 palabras clave. Mínimo requerido: %d/3",
		"cert.already_issued":    "Certificado ya emitido el %s",
		"cert.success":           "¡Certificado emitido con éxito!",
		"cert.code_missing":      "Código no proporcionado",
		"cert.not_found":         "Certificado no encontrado o inválido",
		"cert.not_found_exact":   "No se encontró un certificado con este código exacto.",
		"cert.suggestion":        "¿Quiso decir:",
		"cert.valid":             "Certificado válido",

		"error.internal":               "Error interno del servidor",
		"error.bad_request":            "Solicitud inválida",
		"error.not_found":              "Recurso no encontrado",
		"error.unauthorized":           "No autorizado",
		"error.forbidden":              "Acceso denegado",
		"error.rate_limited":           "Demasiadas solicitudes. Inténtelo de nuevo en %d segundos.",
		"error.login_failed":           "Usuario o contraseña incorrectos",
		"error.email_invalid":          "Correo electrónico inválido",
		"error.event_fetch_failed":     "Error al cargar eventos",
		"error.event_not_found":        "Evento no encontrado",
		"error.registration_failed":    "Error al procesar la inscripción",
		"error.registration_not_found": "Inscripción no encontrada",
		"error.payment_gateway_failed": "Fallo de comunicación con el proveedor de pago",
		"error.payment_not_confirmed":  "Pago aún no confirmado",
		"error.work_submit_failed":     "Error al enviar el trabajo",

		"msg.registration_confirmed": "¡Inscripción confirmada con éxito!",
		"msg.registration_pending":   "Inscripción registrada. Complete el pago para confirmar.",
		"msg.work_received":          "¡Trabajo recibido con éxito!",

		"email.certificate.subject":  "Su certificado - %s",
		"email.certificate.body":     "Hola %s,\n\nSu certificado del evento %s ha sido emitido.\n\nCódigo de verificación: %s\nDescarga: %s",
		"email.registration.subject": "Inscripción confirmada - %s",
		"email.registration.body":    "Hola %s,\n\nSu inscripción %s en el evento %s ha sido confirmada.",
		"email.work.subject":         "Trabajo recibido - %s",
		"email.work.body":            "Hola %s,\n\nSu trabajo \"%s\" ha sido recibido y será evaluado por el comité científico.",
	},
	LocaleTR: {
		"cert.invalid_data":      "Geçersiz veri. 3 anahtar kelime gereklidir.",
		"cert.name_min":          "İsim en az 2 karakter olmalıdır",
		"cert.too_many_attempts": "Çok fazla deneme. 1 saat sonra tekrar deneyin.",
		"cert.event_not_found":   "Etkinlik bulunamadı veya sertifikalar etkin değil",
		"cert.keywords_mismatch": "3 anahtar kelimeden %d tanesini bildiniz. Gereken en az: %d/3",
		"cert.already_issued":    "Sertifika %s tarihinde zaten verildi",
		"cert.success":           "Sertifika başarıyla verildi!",
		"cert.code_missing":      "Kod sağlanmadı",
		"cert.not_found":         "Sertifika bulunamadı veya geçersiz",
		"cert.not_found_exact":   "Bu kodla eşleşen sertifika bulunamadı.",
		"cert.suggestion":        "Şunu mu demek istediniz:",
		"cert.valid":             "Geçerli sertifika",

		"error.internal":               "Sunucu içi hata",
		"error.bad_request":            "Geçersiz istek",
		"error.not_found":              "Kaynak bulunamadı",
		"error.unauthorized":           "Yetkisiz",
		"error.forbidden":              "Erişim reddedildi",
		"error.rate_limited":           "Çok fazla istek. %d saniye sonra tekrar deneyin.",
		"error.login_failed":           "Kullanıcı adı veya şifre hatalı",
		"error.email_invalid":          "Geçersiz e-posta",
		"error.event_fetch_failed":     "Etkinlikler yüklenemedi",
		"error.event_not_found":        "Etkinlik bulunamadı",
		"error.registration_failed":    "Kayıt işlenemedi",
		"error.registration_not_found": "Kayıt bulunamadı",
		"error.payment_gateway_failed": "Ödeme sağlayıcısıyla iletişim kurulamadı",
		"error.payment_not_confirmed":  "Ödeme henüz onaylanmadı",
		"error.work_submit_failed":     "Çalışma gönderilemedi",

		"msg.registration_confirmed": "Kayıt başarıyla onaylandı!",
		"msg.registration_pending":   "Kayıt alındı. Onaylamak için ödemeyi tamamlayın.",
		"msg.work_received":          "Çalışma başarıyla alındı!",
	},
}
