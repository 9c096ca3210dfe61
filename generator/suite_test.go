package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSuiteGenerate(t *testing.T) {
	langs, class := testDescriptions(t)
	suite := NewSuite(langs, class, "Test Owner", "")

	fs, err := suite.Generate()
	assert.NoError(t, err)

	paths := strings.Join(fs.Paths(), "\n")
	// Base interface, mock and cmake glue.
	assert.Contains(t, paths, "inc/ParserStringListInterface.h")
	assert.Contains(t, paths, "src/ParserStringListInterface.cpp")
	assert.Contains(t, paths, "mock/mock_ParserStringListInterface.h")
	assert.Contains(t, paths, "mock/mock_ParserStringListInterface.cpp")
	assert.Contains(t, paths, "CMakeLists.txt")
	assert.Contains(t, paths, "language_files.cmake")

	// Three files per language plus the base, select test, mock and
	// cmake files.
	expected := 3*len(langs.Names()) + 9
	assert.Equal(t, expected, fs.Len())
}

func TestSuiteGenerateAndWrite(t *testing.T) {
	langs, class := testDescriptions(t)
	suite := NewSuite(langs, class, "Test Owner", "")
	suite.BaseDirName = "generated"

	fs, err := suite.Generate()
	assert.NoError(t, err)

	root := t.TempDir()
	assert.NoError(t, fs.Write(root))

	content, err := os.ReadFile(filepath.Join(root, "inc", "ParserStringListInterfaceEnglish.h"))
	assert.NoError(t, err)
	assert.Contains(t, string(content), "class ParserStringListInterfaceEnglish final")

	content, err = os.ReadFile(filepath.Join(root, "language_files.cmake"))
	assert.NoError(t, err)
	assert.Contains(t, string(content), "${MASTER_PROJECT_BASE_DIR}/generated/inc")
}

func TestSuiteBadEula(t *testing.T) {
	langs, class := testDescriptions(t)
	suite := NewSuite(langs, class, "Test Owner", "not-a-eula")

	_, err := suite.Generate()
	assert.Error(t, err)
}
