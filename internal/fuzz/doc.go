// Package fuzztests houses Go fuzz harnesses for the front end of quill
// (source -> lexer -> parser). They guard against panics, hangs and broken
// span trees on arbitrary input.
//
// Назначение: прогонять произвольные байты через FileSet, лексер и парсер.
//
// Не делает: генерацию корпусов, запуск правил, выполнение CLI.
package fuzztests
