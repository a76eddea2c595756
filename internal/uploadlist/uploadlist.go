// Package uploadlist читает текстовый список загрузок и разбивает его на группы.
//
// Формат файла:
//
//	Name: Имя папки
//	http://url1.com
//	http://url2.com
//
//	Name: Другая папка
//	http://url3.com
//
// Пустая строка или строка, начинающаяся с "_", закрывает текущую группу.
package uploadlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"uploadman/internal/model"
)

const namePrefix = "name:"

func ParseFile(fileName string) ([]model.UploadGroup, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) ([]model.UploadGroup, error) {
	var (
		groups []model.UploadGroup
		name   string
		urls   []string
	)

	flush := func() {
		// Группа без имени или без URL-ов отбрасывается
		if name != "" && len(urls) > 0 {
			groups = append(groups, model.UploadGroup{FolderName: name, URLs: urls})
			name = ""
			urls = nil
		}
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "_"):
			flush()

		case strings.HasPrefix(strings.ToLower(line), namePrefix):
			flush()
			name = strings.TrimSpace(line[len(namePrefix):])
			urls = nil

		case strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://"):
			// URL-ы до первого имени папки игнорируются
			if name != "" {
				urls = append(urls, line)
			}
		}
	}
	flush()

	return groups, sc.Err()
}
