package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

const (
	ERROR_INPUT               = "Nieprawidłowe dane"
	ERROR_INTERNAL_ERROR      = "Wystąpił błąd serwera"
	DATA_INPUT_IS_NOT_NUMBER  = "Parametr musi być liczbą"
	MISSING_LOGIN_INPUT       = "Podaj nazwę użytkownika i hasło"
	INVALID_USERNAME          = "Użytkownik nie istnieje"
	INVALID_PASSWORD          = "Nieprawidłowe hasło"
	ACCOUNT_NOT_ACTIVE        = "Konto jest nieaktywne"
	ORDER_NOT_FOUND           = "Zamówienie nie zostało znalezione"
	RATING_NOT_FOUND          = "Ocena nie została znaleziona"
	MENU_ITEM_NOT_FOUND       = "Pozycja menu nie została znaleziona"
	AVAILABILITY_NOT_FOUND    = "Termin nie został znaleziony"
	DATE_NOT_AVAILABLE        = "Wybrany termin nie jest dostępny"
	ITEMS_UNAVAILABLE         = "Niektóre pozycje menu są niedostępne"
	ORDER_ITEMS_REQUIRED      = "Zamówienie musi zawierać co najmniej jedną pozycję"
	ONLY_DELIVERED_CAN_RATE   = "Można ocenić tylko dostarczone zamówienia"
	REJECTION_REASON_REQUIRED = "Powód odrzucenia jest wymagany"
	TERMINAL_STATUS_FROZEN    = "Zamówienie ma status końcowy i nie może być już zmienione"
	MESSAGE_EMPTY             = "Wiadomość nie może być pusta"
	MESSAGE_TOO_LONG          = "Wiadomość jest za długa"
)
