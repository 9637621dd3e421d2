package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDropPrompt        = "drop_prompt"
	KeyDropHint          = "drop_hint"
	KeySupportedFormats  = "supported_formats"
	KeyReplace           = "replace"
	KeyRemove            = "remove"
	KeyUploadComplete    = "upload_complete"
	KeyImageRemoved      = "image_removed"
	KeyInvalidType       = "invalid_type"
	KeyFileTooLarge      = "file_too_large"
	KeyPreviewFailed     = "preview_failed"
	KeyLoadedFromStorage = "loaded_from_storage"
	KeyPreviously        = "previously"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyRestoreOnStartup  = "restore_on_startup"
	KeyStorageQuota      = "storage_quota"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Drop",
		KeyDropPrompt:        "Drag & drop an image here",
		KeyDropHint:          "or click to browse",
		KeySupportedFormats:  "JPG, PNG or GIF, up to 5MB",
		KeyReplace:           "Replace Image",
		KeyRemove:            "Remove",
		KeyUploadComplete:    "Upload Complete!",
		KeyImageRemoved:      "Image removed",
		KeyInvalidType:       "Invalid file type. Please upload JPG, PNG, or GIF.",
		KeyFileTooLarge:      "File too large. Maximum size is 5MB.",
		KeyPreviewFailed:     "Failed to load image preview.",
		KeyLoadedFromStorage: "Loaded from storage (%s)",
		KeyPreviously:        "Previously",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyRestoreOnStartup:  "Restore last image on startup",
		KeyStorageQuota:      "Storage quota (MB)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузка изображений",
		KeyDropPrompt:        "Перетащите изображение сюда",
		KeyDropHint:          "или нажмите, чтобы выбрать",
		KeySupportedFormats:  "JPG, PNG или GIF, до 5 МБ",
		KeyReplace:           "Заменить",
		KeyRemove:            "Удалить",
		KeyUploadComplete:    "Загрузка завершена!",
		KeyImageRemoved:      "Изображение удалено",
		KeyInvalidType:       "Неверный тип файла. Загрузите JPG, PNG или GIF.",
		KeyFileTooLarge:      "Файл слишком большой. Максимум 5 МБ.",
		KeyPreviewFailed:     "Не удалось загрузить предпросмотр.",
		KeyLoadedFromStorage: "Загружено из хранилища (%s)",
		KeyPreviously:        "Ранее",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyRestoreOnStartup:  "Показывать последнее изображение при запуске",
		KeyStorageQuota:      "Лимит хранилища (МБ)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Image Drop",
		KeyDropPrompt:        "Arraste e solte uma imagem aqui",
		KeyDropHint:          "ou clique para procurar",
		KeySupportedFormats:  "JPG, PNG ou GIF, até 5MB",
		KeyReplace:           "Substituir Imagem",
		KeyRemove:            "Remover",
		KeyUploadComplete:    "Envio concluído!",
		KeyImageRemoved:      "Imagem removida",
		KeyInvalidType:       "Tipo de arquivo inválido. Envie JPG, PNG ou GIF.",
		KeyFileTooLarge:      "Arquivo muito grande. O tamanho máximo é 5MB.",
		KeyPreviewFailed:     "Falha ao carregar a pré-visualização.",
		KeyLoadedFromStorage: "Carregado do armazenamento (%s)",
		KeyPreviously:        "Anteriormente",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyRestoreOnStartup:  "Restaurar última imagem ao iniciar",
		KeyStorageQuota:      "Cota de armazenamento (MB)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
