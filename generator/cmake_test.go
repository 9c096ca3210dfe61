package generator

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func testCmakeGenerator(t *testing.T) *CmakeGenerator {
	t.Helper()
	langs, class := testDescriptions(t)

	baseGen, err := NewBaseFileGenerator(langs, class, "Test Owner", "")
	assert.NoError(t, err)
	langGen, err := NewLangFileGenerator(langs, class, "Test Owner", "")
	assert.NoError(t, err)

	fs := NewFileSet()
	assert.NoError(t, baseGen.Generate(fs, "inc", "src", "test", "mock"))
	assert.NoError(t, langGen.Generate(fs, "inc", "src", "test"))

	return NewCmakeGenerator(baseGen, langGen, []string{"inc"}, "mock", "output")
}

func TestUnittestBuild(t *testing.T) {
	gen := testCmakeGenerator(t)

	lines := gen.unittestBuild("english string",
		[]string{"src/Lang.cpp", "test/Lang_test.cpp"}, "Lang_test", "Proj_baseInclude")
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "# english string unit test build")
	assert.Contains(t, joined, "add_executable(Lang_test src/Lang.cpp test/Lang_test.cpp)")
	assert.Contains(t, joined,
		"target_include_directories(Lang_test PUBLIC ${Proj_baseInclude} ${GTEST_INCLUDE_DIR})")
	assert.Contains(t, joined, "target_link_libraries(Lang_test PRIVATE ${GTEST_LIBRARIES})")
	assert.Contains(t, joined,
		"target_compile_options(Lang_test PUBLIC -DGTEST_LINKED_AS_SHARED_LIBRARY=1)")
	assert.Contains(t, joined, "    target_compile_options(Lang_test PRIVATE --coverage)")
	assert.Contains(t, joined, "gtest_add_tests (TARGET Lang_test TEST_LIST Lang_testAllTests)")
	assert.Contains(t, joined, `if(${CMAKE_SYSTEM_NAME} MATCHES "Windows")`)
	assert.Contains(t, joined, "set_tests_properties(${Lang_testAllTests}")
}

func TestCmakeListLines(t *testing.T) {
	gen := testCmakeGenerator(t)
	joined := strings.Join(gen.CmakeListLines(), "\n")

	assert.Contains(t, joined, "cmake_minimum_required(VERSION 3.14)")
	assert.Contains(t, joined,
		`project(ParserStringListInterface VERSION 1.0.0.3 LANGUAGES C CXX `+
			`DESCRIPTION "ParserStringListInterface Library" `+
			`HOMEPAGE_URL "https://github.com/randaleike/argparse")`)
	assert.Contains(t, joined, "set(CMAKE_CXX_STANDARD 17)")
	assert.Contains(t, joined, "set (ParserStringListInterface_baseInclude")
	assert.Contains(t, joined, "     ${CMAKE_CURRENT_LIST_DIR}/inc")
	assert.Contains(t, joined, "set (ParserStringListInterface_baseSrc")
	assert.Contains(t, joined,
		"     ${CMAKE_CURRENT_LIST_DIR}/src/ParserStringListInterfaceEnglish.cpp")
	assert.Contains(t, joined,
		"add_library(${PROJECT_NAME} OBJECT ${ParserStringListInterface_baseSrc})")
	assert.Contains(t, joined, "enable_testing()")
	assert.Contains(t, joined, "include(GoogleTest)")
	assert.Contains(t, joined, "add_executable(ParserStringListInterfaceEnglish_test")
	assert.Contains(t, joined, "add_executable(LocalLanguageSelect_Linux_test")
	assert.Contains(t, joined, "add_executable(LocalLanguageSelect_Windows_test")
	assert.Contains(t, joined, "add_executable(ParserStringListInterface_test")
}

func TestCmakeIncFileLines(t *testing.T) {
	gen := testCmakeGenerator(t)
	joined := strings.Join(gen.IncFileLines(), "\n")

	assert.Contains(t, joined, "set (languageStringsIncDir")
	assert.Contains(t, joined, "     ${MASTER_PROJECT_BASE_DIR}/output/inc")
	assert.Contains(t, joined, "set (languageStringsMockIncDir")
	assert.Contains(t, joined, "     ${languageStringsIncDir}")
	assert.Contains(t, joined, "     ${MASTER_PROJECT_BASE_DIR}/output/mock")
	assert.Contains(t, joined, "set (languageStringsSrc")
	assert.Contains(t, joined,
		"     ${MASTER_PROJECT_BASE_DIR}/output/src/ParserStringListInterface.cpp")
	assert.Contains(t, joined, "set (languageStringsMockSrc")
	assert.Contains(t, joined,
		"     ${MASTER_PROJECT_BASE_DIR}/output/mock/mock_ParserStringListInterface.cpp")
}

func TestCmakeGenerate(t *testing.T) {
	gen := testCmakeGenerator(t)
	fs := NewFileSet()
	gen.Generate(fs)

	assert.Equal(t, []string{"CMakeLists.txt", "language_files.cmake"}, fs.Paths())
}
