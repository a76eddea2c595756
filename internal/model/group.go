package model

// UploadGroup — группа URL-ов, загружаемых в одну удалённую папку.
// Создаётся парсером списка и после этого не изменяется.
type UploadGroup struct {
	FolderName string   `json:"folder_name"`
	URLs       []string `json:"urls"`
}

// TotalURLs возвращает суммарное количество URL-ов во всех группах.
func TotalURLs(groups []UploadGroup) int {
	var n int
	for i := range groups {
		n += len(groups[i].URLs)
	}
	return n
}
